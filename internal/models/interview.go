package models

// Interview represents a generated mock interview. Interviews are created by
// an external process; this service only reads them.
type Interview struct {
	ID        string   `json:"id"`
	Role      string   `json:"role"`
	Level     string   `json:"level"`
	Questions []string `json:"questions"`
	Techstack []string `json:"techstack"`
	CreatedAt string   `json:"createdAt"`
	UserID    string   `json:"userId"`
	Type      string   `json:"type"`
	Finalized bool     `json:"finalized"`
}
