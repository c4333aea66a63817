package shop

// Shop is a single directory listing. IDs are stable and never reused;
// everything else is user-editable through the admin surfaces.
type Shop struct {
	ID       int64  `json:"id" db:"id"`
	Name     string `json:"name" db:"name"`
	Region   string `json:"region" db:"region"`
	Locality string `json:"locality" db:"locality"`
	Live     bool   `json:"live" db:"live"`
}
