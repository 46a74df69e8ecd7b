package consts

const (
	ApplicationName    = "PhotoShare"
	ApplicationVersion = "1.0.0"
)
