package notifications

type Notification struct {
	Message   string  `json:"message"`
	Timestamp float64 `json:"timestamp"`
}

type WatermarkResponse struct {
	LastCheck float64 `json:"last_check"`
}
