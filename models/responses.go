package models

// RemoveResult is the response body of a successful car removal.
type RemoveResult struct {
	Msg   string `json:"msg"`
	CarID string `json:"carId"`
}
