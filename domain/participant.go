// Package domain contains core concepts of the topic board.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

// Identity is the opaque, stable identity token assigned to a participant
// by the external transport. The core never interprets it.
type Identity string

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

type Student struct {
	ID           int64
	Identity     Identity
	Name         string
	Email        *string
	Phone        *string
	Group        string
	DepartmentID int64
	CreatedAt    time.Time
}

type Teacher struct {
	ID           int64
	Identity     Identity
	Name         string
	Email        *string
	Phone        *string
	DepartmentID int64
	CreatedAt    time.Time
}

// Profile is the read-only view of a participant shown by the roster dialogs.
type Profile struct {
	Role       Role
	Name       string
	Email      *string
	Phone      *string
	TopicTitle *string
}
