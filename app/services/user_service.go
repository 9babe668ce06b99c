package services

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/danghq/shopdesk/app/models"
	"github.com/danghq/shopdesk/app/remote"
	"github.com/danghq/shopdesk/config"
	"github.com/danghq/shopdesk/pkg/collection"
	"github.com/danghq/shopdesk/pkg/fetch"
	"github.com/danghq/shopdesk/pkg/logger"
	"github.com/danghq/shopdesk/pkg/validate"
)

// UserInput is the validated form payload for account create/update.
// Password is required on create and optional on update; an empty
// password on update keeps the stored hash.
type UserInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"nullable,min=6"`
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Address  string `json:"address"  validate:"nullable,max=255"`
	Phone    string `json:"phone"    validate:"nullable,min=9,max=15"`
	Role     int    `json:"role"     validate:"in=0,1"`
	Locked   bool   `json:"isLocked"`
	Avatar   string `json:"avatar"   validate:"nullable,url"`
}

func (in UserInput) toModel() models.User {
	return models.User{
		Email:   in.Email,
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
		Role:    in.Role,
		Locked:  in.Locked,
		Avatar:  in.Avatar,
	}
}

type UserService struct {
	base string
}

func NewUserService() *UserService {
	return &UserService{base: config.APIBaseURL()}
}

// List fetches every account. Any failure yields an empty slice.
func (s *UserService) List(ctx context.Context) []models.User {
	resp, err := fetch.Get(s.base + "/users").
		Resource("users").
		WithContext(ctx).
		Send()
	if err != nil {
		logger.Warn("users: list failed", "error", err)
		return []models.User{}
	}
	if !resp.OK() {
		logger.Warn("users: list returned non-2xx", "status", resp.StatusCode)
		return []models.User{}
	}

	var records []remote.UserRecord
	if err := resp.JSON(&records); err != nil {
		logger.Warn("users: decode failed", "error", err)
		return []models.User{}
	}
	return collection.Map(records, remote.ToUser)
}

// Find fetches one account by id, or nil when anything goes wrong.
func (s *UserService) Find(ctx context.Context, id int) *models.User {
	record, ok := s.findRecord(ctx, id)
	if !ok {
		return nil
	}
	u := remote.ToUser(record)
	return &u
}

// findRecord fetches the raw wire record. AuthService needs the stored
// password hash, which ToUser deliberately drops.
func (s *UserService) findRecord(ctx context.Context, id int) (remote.UserRecord, bool) {
	resp, err := fetch.Get(fmt.Sprintf("%s/users/%d", s.base, id)).
		Resource("users").
		WithContext(ctx).
		Send()
	if err != nil {
		logger.Warn("users: find failed", "id", id, "error", err)
		return remote.UserRecord{}, false
	}
	if !resp.OK() {
		logger.Warn("users: find returned non-2xx", "id", id, "status", resp.StatusCode)
		return remote.UserRecord{}, false
	}

	var record remote.UserRecord
	if err := resp.JSON(&record); err != nil {
		logger.Warn("users: decode failed", "id", id, "error", err)
		return remote.UserRecord{}, false
	}
	return record, true
}

// Create validates and submits a new account. The password is bcrypt
// hashed before it leaves the process.
func (s *UserService) Create(ctx context.Context, in UserInput) (*models.User, map[string]string) {
	errs := validate.Struct(in)
	if in.Password == "" {
		errs["password"] = "password is required"
	}
	if validate.HasErrors(errs) {
		return nil, errs
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		logger.Error("users: hash password failed", "error", err)
		return nil, nil
	}

	resp, err := fetch.Post(s.base+"/users").
		Resource("users").
		Body(remote.UserPayload(in.toModel(), hashed)).
		WithContext(ctx).
		Send()
	if err != nil {
		logger.Warn("users: create failed", "error", err)
		return nil, nil
	}
	if !resp.OK() {
		logger.Warn("users: create returned non-2xx", "status", resp.StatusCode)
		return nil, nil
	}
	return s.decodeOne(resp, "create")
}

// Update validates and submits against an existing account.
func (s *UserService) Update(ctx context.Context, id int, in UserInput) (*models.User, map[string]string) {
	if errs := validate.Struct(in); validate.HasErrors(errs) {
		return nil, errs
	}

	var hashed string
	if in.Password != "" {
		var err error
		hashed, err = hashPassword(in.Password)
		if err != nil {
			logger.Error("users: hash password failed", "error", err)
			return nil, nil
		}
	}

	resp, err := fetch.Put(fmt.Sprintf("%s/users/%d", s.base, id)).
		Resource("users").
		Body(remote.UserPayload(in.toModel(), hashed)).
		WithContext(ctx).
		Send()
	if err != nil {
		logger.Warn("users: update failed", "id", id, "error", err)
		return nil, nil
	}
	if !resp.OK() {
		logger.Warn("users: update returned non-2xx", "id", id, "status", resp.StatusCode)
		return nil, nil
	}
	return s.decodeOne(resp, "update")
}

func (s *UserService) decodeOne(resp *fetch.Response, op string) (*models.User, map[string]string) {
	var record remote.UserRecord
	if err := resp.JSON(&record); err != nil {
		logger.Warn("users: decode failed", "op", op, "error", err)
		return nil, nil
	}
	u := remote.ToUser(record)
	return &u, nil
}

// Delete removes an account. False on any failure.
func (s *UserService) Delete(ctx context.Context, id int) bool {
	resp, err := fetch.Delete(fmt.Sprintf("%s/users/%d", s.base, id)).
		Resource("users").
		WithContext(ctx).
		Send()
	if err != nil {
		logger.Warn("users: delete failed", "id", id, "error", err)
		return false
	}
	if !resp.OK() {
		logger.Warn("users: delete returned non-2xx", "id", id, "status", resp.StatusCode)
		return false
	}
	return true
}

func hashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
