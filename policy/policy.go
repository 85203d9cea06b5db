// Package policy holds the pure role predicates. Every predicate works on an
// Identity whose role set was resolved once by the auth middleware; nothing
// here touches the database.
package policy

import "littlelemon-api/models"

// Identity is the authenticated caller with their resolved role set.
type Identity struct {
	UserID    uint
	Username  string
	Email     string
	Superuser bool
	Roles     []string
}

func (id Identity) hasRole(name string) bool {
	for _, r := range id.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// IsManager reports whether the caller is a superuser or a Manager member.
func IsManager(id Identity) bool {
	return id.Superuser || id.hasRole(models.GroupManager)
}

// IsDeliveryCrew reports whether the caller belongs to the Delivery Crew group.
func IsDeliveryCrew(id Identity) bool {
	return id.hasRole(models.GroupDeliveryCrew)
}

// CanWriteMenu gates all menu mutations; reads are open to any
// authenticated user.
func CanWriteMenu(id Identity) bool {
	return IsManager(id)
}
