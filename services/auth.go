package services

import (
	"context"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"codeshift/apperror"
	"codeshift/logger"
	"codeshift/models"
	"codeshift/repositories"
	"codeshift/statestore"
	"codeshift/structs"
	"codeshift/utils"
)

// UserStore is the slice of the user repository the orchestrator needs.
type UserStore interface {
	FindByGitHubID(ctx context.Context, githubID string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, fields bson.M) (bson.M, error)
	UpdateByID(ctx context.Context, id string, fields bson.M) (bool, error)
}

// SkillProfileStore is the slice of the skill-profile repository the
// orchestrator needs.
type SkillProfileStore interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.SkillProfile, error)
	Create(ctx context.Context, fields bson.M) (bson.M, error)
}

// RepoCounter counts linked repository documents for the /auth/me projection.
type RepoCounter interface {
	Count(ctx context.Context, filter bson.M) (int64, error)
}

// GitHubClient is the identity-provider surface the orchestrator drives.
type GitHubClient interface {
	AuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
	GetUser(ctx context.Context, accessToken string) (*GitHubUser, error)
	GetUserEmails(ctx context.Context, accessToken string) ([]GitHubEmail, error)
}

// AuthService coordinates the OAuth handshake: state tokens, the provider
// round trips, the user/skill-profile upsert, and session issuance.
type AuthService struct {
	users       UserStore
	profiles    SkillProfileStore
	repos       RepoCounter
	github      GitHubClient
	states      statestore.Store
	frontendURL string
	log         *logger.Logger
}

func NewAuthService(
	users UserStore,
	profiles SkillProfileStore,
	repos RepoCounter,
	github GitHubClient,
	states statestore.Store,
	frontendURL string,
	log *logger.Logger,
) *AuthService {
	return &AuthService{
		users:       users,
		profiles:    profiles,
		repos:       repos,
		github:      github,
		states:      states,
		frontendURL: frontendURL,
		log:         log.With("service", "auth"),
	}
}

// Initiate starts a login attempt: it issues a fresh state token, stashes it
// with the caller's post-login redirect, and returns the provider
// authorization URL embedding the state.
func (s *AuthService) Initiate(ctx context.Context, redirectURI string) (string, error) {
	state, err := utils.GenerateStateToken()
	if err != nil {
		return "", err
	}

	if redirectURI == "" {
		redirectURI = s.frontendURL + "/auth/callback"
	}

	entry := statestore.Entry{RedirectURI: redirectURI, CreatedAt: time.Now().UTC()}
	if err := s.states.Put(ctx, state, entry, statestore.DefaultTTL); err != nil {
		return "", apperror.Storage("store oauth state", err)
	}

	return s.github.AuthURL(state), nil
}

// Callback completes a login attempt. The state must be a pending,
// unexpired, never-used entry; replays fail before any provider call or
// document write happens.
func (s *AuthService) Callback(ctx context.Context, code, state string) (*structs.AuthResponse, error) {
	_, ok, err := s.states.Take(ctx, state)
	if err != nil {
		return nil, apperror.Storage("take oauth state", err)
	}
	if !ok {
		return nil, apperror.InvalidInput("invalid state parameter")
	}

	accessToken, err := s.github.ExchangeCode(ctx, code)
	if err != nil {
		return nil, apperror.Upstream("exchange code", err)
	}
	if accessToken == "" {
		return nil, apperror.InvalidInput("failed to obtain access token")
	}

	ghUser, err := s.github.GetUser(ctx, accessToken)
	if err != nil {
		return nil, apperror.Upstream("fetch user profile", err)
	}

	emails, err := s.github.GetUserEmails(ctx, accessToken)
	if err != nil {
		return nil, apperror.Upstream("fetch user emails", err)
	}
	email := primaryEmail(emails, ghUser.Email)

	user, err := s.upsertUser(ctx, ghUser, email, accessToken)
	if err != nil {
		return nil, err
	}

	jwtToken, err := utils.GenerateJWTToken(user.ID.Hex(), user.Username, user.Email)
	if err != nil {
		return nil, err
	}

	s.log.Info("user logged in", "user_id", user.ID.Hex(), "username", user.Username)

	return &structs.AuthResponse{
		AccessToken: jwtToken,
		User: structs.UserInfo{
			ID:        user.ID.Hex(),
			Username:  user.Username,
			Email:     user.Email,
			AvatarURL: user.AvatarURL,
			Plan:      user.Plan,
		},
	}, nil
}

// CurrentUser returns the full public projection for an authenticated user,
// repairing a missing skill-profile reference on the way.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*structs.UserInfo, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err == repositories.ErrNotFound {
		return nil, apperror.NotFound("user")
	}
	if err != nil {
		return nil, apperror.Storage("load user", err)
	}

	if err := s.EnsureSkillProfile(ctx, user); err != nil {
		return nil, err
	}

	repoCount, err := s.repos.Count(ctx, bson.M{"user_id": user.ID})
	if err != nil {
		return nil, apperror.Storage("count repositories", err)
	}

	info := &structs.UserInfo{
		ID:                user.ID.Hex(),
		Username:          user.Username,
		Email:             user.Email,
		AvatarURL:         user.AvatarURL,
		Plan:              user.Plan,
		CreatedAt:         &user.CreatedAt,
		RepositoriesCount: repoCount,
	}
	if user.SkillProfileID != nil {
		info.SkillProfileID = user.SkillProfileID.Hex()
	}
	return info, nil
}

// EnsureSkillProfile repairs the user-profile link: a crash between the
// three creation writes can leave a user without a skill-profile reference.
// Safe to run on every read.
func (s *AuthService) EnsureSkillProfile(ctx context.Context, user *models.User) error {
	if user.SkillProfileID != nil {
		return nil
	}

	profile, err := s.profiles.FindByUser(ctx, user.ID)
	switch {
	case err == repositories.ErrNotFound:
		created, cerr := s.profiles.Create(ctx, emptyProfileFields(user.ID))
		if cerr != nil {
			return apperror.Storage("create skill profile", cerr)
		}
		id := created["_id"].(primitive.ObjectID)
		profile = &models.SkillProfile{ID: id}
	case err != nil:
		return apperror.Storage("load skill profile", err)
	}

	if _, err := s.users.UpdateByID(ctx, user.ID.Hex(), bson.M{"skill_profile_id": profile.ID}); err != nil {
		return apperror.Storage("link skill profile", err)
	}
	user.SkillProfileID = &profile.ID
	return nil
}

func (s *AuthService) upsertUser(ctx context.Context, ghUser *GitHubUser, email, accessToken string) (*models.User, error) {
	githubID := strconv.FormatInt(ghUser.ID, 10)
	now := time.Now().UTC()

	existing, err := s.users.FindByGitHubID(ctx, githubID)
	if err != nil && err != repositories.ErrNotFound {
		return nil, apperror.Storage("look up user", err)
	}

	if existing != nil {
		fields := bson.M{
			"username":            ghUser.Login,
			"email":               email,
			"avatar_url":          ghUser.AvatarURL,
			"github_access_token": accessToken,
			"last_login":          now,
		}
		if _, err := s.users.UpdateByID(ctx, existing.ID.Hex(), fields); err != nil {
			return nil, apperror.Storage("update user", err)
		}
		existing.Username = ghUser.Login
		existing.Email = email
		existing.AvatarURL = ghUser.AvatarURL
		existing.LastLogin = &now
		return existing, nil
	}

	// New user: create the user, then an empty skill profile, then link the
	// two. Not transactional; EnsureSkillProfile heals a crash in between.
	created, err := s.users.Create(ctx, bson.M{
		"github_id":           githubID,
		"username":            ghUser.Login,
		"email":               email,
		"avatar_url":          ghUser.AvatarURL,
		"github_access_token": accessToken,
		"plan":                models.PlanFree,
		"last_login":          now,
	})
	if err != nil {
		return nil, apperror.Storage("create user", err)
	}
	userID := created["_id"].(primitive.ObjectID)

	user := &models.User{
		ID:        userID,
		GitHubID:  githubID,
		Username:  ghUser.Login,
		Email:     email,
		AvatarURL: ghUser.AvatarURL,
		Plan:      models.PlanFree,
		LastLogin: &now,
	}

	if err := s.EnsureSkillProfile(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("new user created", "user_id", userID.Hex(), "username", ghUser.Login)
	return user, nil
}

// primaryEmail picks the first address flagged primary, falling back to the
// profile's public email (which may be empty).
func primaryEmail(emails []GitHubEmail, profileEmail string) string {
	for _, e := range emails {
		if e.Primary {
			return e.Email
		}
	}
	return profileEmail
}

func emptyProfileFields(userID primitive.ObjectID) bson.M {
	return bson.M{
		"user_id":           userID,
		"skills":            []models.Skill{},
		"strengths":         []string{},
		"learning_velocity": map[string][]string{},
		"metrics":           models.SkillProfileMetrics{},
	}
}
