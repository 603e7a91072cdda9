package main

import "time"

const (
	RoleOwner  string = "owner"
	RoleMember string = "member"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	Email    string `json:"email" firestore:"email"`
	Name     string `json:"name" firestore:"name"`
	Password string `json:"-" firestore:"password"`
	FamilyID string `json:"familyId" firestore:"familyId"`
}

type Family struct {
	ID         string `json:"id" firestore:"id"`
	Name       string `json:"name" firestore:"name"`
	CalendarID string `json:"calendarId" firestore:"calendarId"`
}

// Member is a user's role-bearing association with a family. The document
// id equals the user id.
type Member struct {
	ID   string `json:"id" firestore:"id"`
	Role string `json:"role" firestore:"role"`
}

// Event mirrors one external calendar event. EventID is the external
// calendar's id and only becomes valid once the external insert succeeded.
type Event struct {
	ID          string    `json:"id" firestore:"id"`
	Creator     string    `json:"creator" firestore:"creator"`
	Start       time.Time `json:"start" firestore:"start"`
	End         time.Time `json:"end" firestore:"end"`
	Summary     string    `json:"summary" firestore:"summary"`
	Description string    `json:"description" firestore:"description"`
	AssignFor   string    `json:"assignFor" firestore:"assignFor"`
	EventID     string    `json:"eventId" firestore:"eventId"`
}
