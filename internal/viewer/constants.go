package viewer

const (
	columnGap     = 2
	titleLines    = 1
	headerLine    = titleLines
	firstDataLine = headerLine + 1
	footerLines   = 3
	minColumnW    = 3
)
