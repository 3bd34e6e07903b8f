package resource

type RealtimeEventResource struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

func NewRealtimeEvent(action string, data interface{}) *RealtimeEventResource {
	return &RealtimeEventResource{
		Action: action,
		Data:   data,
	}
}
