package models

import "time"

// Contact message statuses. The chain only moves forward:
// new -> replied -> resolved.
const (
	ContactNew      = "new"
	ContactReplied  = "replied"
	ContactResolved = "resolved"
)

var contactOrder = map[string]int{
	ContactNew:      0,
	ContactReplied:  1,
	ContactResolved: 2,
}

// CanTransitionContact reports whether a message may move from -> to.
// Only single forward steps are allowed; a status never regresses.
func CanTransitionContact(from, to string) bool {
	fi, ok := contactOrder[from]
	if !ok {
		return false
	}
	ti, ok := contactOrder[to]
	if !ok {
		return false
	}
	return ti == fi+1
}

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Email     string    `gorm:"size:255" json:"email"`
	Phone     string    `gorm:"size:64" json:"phone,omitempty"`
	Subject   string    `gorm:"size:255" json:"subject"`
	Message   string    `gorm:"type:text" json:"message"`
	Status    string    `gorm:"size:32;default:new;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
