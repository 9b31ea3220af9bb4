// Package service implements business logic for the application.
package service

import (
	"agora/internal/models"
)

// CanMutate decides whether the acting user may edit or delete the given
// content. Authorship is the only grant: the actor's username must equal the
// content's denormalized author. An empty actor never matches anything, and
// content attributed to the deleted-user sentinel belongs to nobody — the
// sentinel name is rejected at registration, but the guard does not rely on
// that.
func CanMutate(actor string, content models.Content) bool {
	if actor == "" || content == nil {
		return false
	}
	if content.ContentAuthor() == models.DeletedUserName {
		return false
	}
	return actor == content.ContentAuthor()
}

// requireOwnership is the shared mutation gate used by the post and comment
// services. It returns the uniform unauthorized error so callers cannot
// accidentally leak which check failed.
func requireOwnership(actor string, content models.Content) error {
	if !CanMutate(actor, content) {
		return models.NewUnauthorizedError("You can only modify your own content")
	}
	return nil
}
