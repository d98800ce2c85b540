// Package projects implements the gateway's core operations: project
// creation, signed-link issuance, upload processing and stored-file
// deletion.
package projects

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/scindn/internal/common"
	"github.com/dmitrijs2005/scindn/internal/cryptox"
	"github.com/dmitrijs2005/scindn/internal/logging"
	"github.com/dmitrijs2005/scindn/internal/server/cache"
	"github.com/dmitrijs2005/scindn/internal/server/links"
	"github.com/dmitrijs2005/scindn/internal/server/models"
	projectsrepo "github.com/dmitrijs2005/scindn/internal/server/repositories/projects"
	"github.com/dmitrijs2005/scindn/internal/server/storage"
	"github.com/dmitrijs2005/scindn/internal/shared"
)

type Service struct {
	repo            projectsrepo.Repository
	cache           *cache.ProjectCache
	registry        *links.Registry
	store           storage.FileStore
	logger          logging.Logger
	responseKeySalt []byte
	maxLinkTTL      time.Duration
}

func NewService(repo projectsrepo.Repository, c *cache.ProjectCache, r *links.Registry,
	store storage.FileStore, logger logging.Logger, responseKeySalt []byte, maxLinkTTL time.Duration) *Service {
	return &Service{
		repo:            repo,
		cache:           c,
		registry:        r,
		store:           store,
		logger:          logger.With("module", "projects"),
		responseKeySalt: responseKeySalt,
		maxLinkTTL:      maxLinkTTL,
	}
}

// normalizeOrigin reduces a registrant-supplied URL to its bare
// scheme://host[:port] form. Anything that does not parse to a scheme and
// host is a validation error.
func normalizeOrigin(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: at least one of the origins was malformed", common.ErrorValidation)
	}
	return u.Scheme + "://" + u.Host, nil
}

// Create registers a new project: it validates and normalizes every origin,
// generates the client id and secret, writes the store row first, then
// prepares the bucket and finally inserts the cache entry, so a cache hit
// never precedes the authoritative row.
func (s *Service) Create(ctx context.Context, ownerUUID, name string, origins []string) (*models.Project, error) {
	normalized := make([]string, 0, len(origins))
	for _, o := range origins {
		n, err := normalizeOrigin(o)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, n)
	}

	jsOrigins, err := json.Marshal(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to encode origins: %w", err)
	}

	secret, err := shared.MakeRandString(common.TokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}
	clientSuffix, err := shared.MakeRandString(common.TokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate client id: %w", err)
	}

	project := &models.Project{
		UUID:      uuid.NewString(),
		OwnerUUID: ownerUUID,
		Name:      name,
		ClientID:  common.ClientIDPrefix + clientSuffix,
		Secret:    secret,
		JSOrigins: string(jsOrigins),
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	if err := s.store.CreateBucket(ctx, project.UUID); err != nil {
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	if err := s.cache.Put(project); err != nil {
		return nil, fmt.Errorf("failed to cache project: %w", err)
	}

	s.logger.Info(ctx, "project created", "uuid", project.UUID, "name", name)
	return project, nil
}

// GenerateLink issues a one-time upload link for the project owning the
// secret. A timeout above the configured maximum is rejected; zero means the
// link never expires on its own.
func (s *Service) GenerateLink(ctx context.Context, secret, keyLabel string, timeoutSeconds int) (string, error) {
	if timeoutSeconds < 0 || time.Duration(timeoutSeconds)*time.Second > s.maxLinkTTL {
		return "", fmt.Errorf("%w: timeoutSeconds out of range", common.ErrorValidation)
	}

	if _, err := s.repo.GetBySecret(ctx, secret); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("failed to resolve project: %w", err)
	}

	token, err := s.registry.Issue(secret, keyLabel, time.Duration(timeoutSeconds)*time.Second)
	if err != nil {
		return "", fmt.Errorf("failed to issue link: %w", err)
	}

	return "/upload/" + token, nil
}

// SkippedFile records one file dropped from a manifest and why.
type SkippedFile struct {
	OriginalFilename string
	Reason           string
}

// UploadResult is the outcome of one processed upload: the encrypted
// manifest payload plus the accepted/skipped split for logging and metrics.
type UploadResult struct {
	Payload  string
	Accepted []models.StoredFile
	Skipped  []SkippedFile
}

// ProcessUpload persists every ingested file of one consumed link and
// returns the encrypted manifest. Files with an unrecognized MIME type, or
// that fail to move, are dropped from the manifest while the rest of the
// request still succeeds.
func (s *Service) ProcessUpload(ctx context.Context, link links.Link, files []models.IngestedFile) (*UploadResult, error) {
	entry, err := s.cache.Get(link.Secret)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	result := &UploadResult{Accepted: make([]models.StoredFile, 0, len(files))}
	for _, f := range files {
		stored, err := s.store.Store(ctx, entry.Project.UUID, f)
		if err != nil {
			s.logger.Warn(ctx, "file skipped", "filename", f.OriginalFilename, "reason", err.Error())
			result.Skipped = append(result.Skipped, SkippedFile{OriginalFilename: f.OriginalFilename, Reason: err.Error()})
			continue
		}
		result.Accepted = append(result.Accepted, *stored)
	}

	manifest := models.Manifest{SignedAt: time.Now().UnixMilli(), Files: result.Accepted}

	key := cryptox.DeriveResponseKey([]byte(link.Secret), s.responseKeySalt)
	defer shared.WipeByteArray(key)
	result.Payload, err = cryptox.EncryptPayload(manifest, key)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt manifest: %w", err)
	}
	return result, nil
}

// DeleteFile removes one stored file from the project owning the secret.
func (s *Service) DeleteFile(ctx context.Context, secret, filename string) error {
	project, err := s.repo.GetBySecret(ctx, secret)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("failed to resolve project: %w", err)
	}

	return s.store.Delete(ctx, project.UUID, filename)
}
