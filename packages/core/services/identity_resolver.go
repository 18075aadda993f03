package services

import (
	"core/models"
)

// IdentityResolver decides which game user an upload batch belongs to. The
// two upload routes share one ingestion path and differ only in strategy:
// the public bookmarklet route resolves by gitadora id (creating and linking
// profiles), the admin route resolves a known internal id.
type IdentityResolver interface {
	Resolve() (*models.GameUser, error)
}

type gitadoraIDResolver struct {
	users        *GameUserService
	profile      models.ProfileInfo
	socialUserID *uint
}

// ByGitadoraID resolves by the scraped external id, applying the
// find-or-create and account linkage rules.
func ByGitadoraID(users *GameUserService, profile models.ProfileInfo, socialUserID *uint) IdentityResolver {
	return &gitadoraIDResolver{
		users:        users,
		profile:      profile,
		socialUserID: socialUserID,
	}
}

func (r *gitadoraIDResolver) Resolve() (*models.GameUser, error) {
	return r.users.ResolveByGitadoraID(r.profile.GitadoraID, r.profile.Name, r.profile.Title, r.socialUserID)
}

type gameUserIDResolver struct {
	users *GameUserService
	id    uint
}

// ByGameUserID resolves an already known internal game user id.
func ByGameUserID(users *GameUserService, id uint) IdentityResolver {
	return &gameUserIDResolver{
		users: users,
		id:    id,
	}
}

func (r *gameUserIDResolver) Resolve() (*models.GameUser, error) {
	return r.users.GetByID(r.id)
}
