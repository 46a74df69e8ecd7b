package dto

type SystemInfoResponse struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
}

type ServerStatsResponse struct {
	UserCount    int64              `json:"user_count"`
	ImageCount   int64              `json:"image_count"`
	CommentCount int64              `json:"comment_count"`
	RatingCount  int64              `json:"rating_count"`
	TagCount     int64              `json:"tag_count"`
	SystemInfo   SystemInfoResponse `json:"system_info"`
}
