package entity

// Modality is a sport offered by the school (futebol, futsal, ...).
type Modality struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
