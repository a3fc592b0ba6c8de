package session

// PressRequest is the JSON body for POST /sessions/{id}/press.
type PressRequest struct {
	Key string `json:"key"`
}
