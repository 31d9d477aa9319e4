package client

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"medvault/internal/app/client/config"
	"medvault/internal/domain/record"
	"medvault/internal/domain/user"
)

// App is the client composition root: it owns the slot storage, the pinning
// gateway, the record store and the user session, and enforces permissions
// before store mutations. The store itself stays authorization-free.
type App struct {
	config  *config.Config
	log     *slog.Logger
	gateway *Gateway
	storage SlotStorage
	store   *Store
	session *Session
	state   *AppState
}

// AppState is housekeeping persisted next to the vault.
type AppState struct {
	ClientID     string    `json:"client_id"`
	LastImport   time.Time `json:"last_import"`
	RecordsCount int       `json:"records_count"`
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	state, err := loadAppState(cfg)
	if err != nil {
		log.Warn("failed to load app state", "error", err)
		state = &AppState{}
	}
	if state.ClientID == "" {
		state.ClientID = uuid.NewString()
	}

	gateway := NewGateway(cfg, log)

	var storage SlotStorage
	sqliteStorage, err := NewSQLiteStorage(cfg.DataPath)
	if err != nil {
		log.Warn("failed to open local database, falling back to memory", "error", err)
		storage = NewMemoryStorage()
	} else {
		storage = sqliteStorage
	}

	app := &App{
		config:  cfg,
		log:     log,
		gateway: gateway,
		storage: storage,
		store:   NewStore(storage, gateway, log),
		session: NewSession(storage, log),
		state:   state,
	}

	if err := app.saveAppState(); err != nil {
		log.Warn("failed to save app state", "error", err)
	}

	return app, nil
}

func loadAppState(cfg *config.Config) (*AppState, error) {
	statePath := filepath.Join(cfg.ConfigDir, "state.json")

	if _, err := os.Stat(statePath); os.IsNotExist(err) {
		return &AppState{}, nil
	}

	data, err := os.ReadFile(statePath)
	if err != nil {
		return nil, err
	}

	var state AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

func (a *App) saveAppState() error {
	statePath := filepath.Join(a.config.ConfigDir, "state.json")
	data, err := json.MarshalIndent(a.state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(statePath, data, 0600)
}

func (a *App) touchState() {
	a.state.LastImport = time.Now()
	a.state.RecordsCount = a.store.Len()
	if err := a.saveAppState(); err != nil {
		a.log.Warn("failed to save app state", "error", err)
	}
}

// Login sets the current user.
func (a *App) Login(u *user.User) error {
	return a.session.Login(u)
}

// Logout clears the current user.
func (a *App) Logout() {
	a.session.Logout()
}

// CurrentUser returns the logged-in user, or nil.
func (a *App) CurrentUser() *user.User {
	return a.session.Current()
}

// ImportRecord resolves a content identifier and adds the record to the
// vault. The current user needs the create grant for medical records.
func (a *App) ImportRecord(ctx context.Context, ref string) error {
	u := a.session.Current()
	if u == nil {
		return ErrNotAuthenticated
	}
	if !user.CanCreateRecord(u) {
		return fmt.Errorf("import record: %w", ErrPermissionDenied)
	}

	if err := a.store.AddRecord(ctx, ref); err != nil {
		return err
	}

	a.touchState()
	return nil
}

// CreateRecord pins new record data and imports the resulting reference, so
// the vault entry's identifier is the content identifier of its payload. An
// optional file is pinned first and linked through the payload.
func (a *App) CreateRecord(ctx context.Context, data record.Data, filePath string) (string, error) {
	u := a.session.Current()
	if u == nil {
		return "", ErrNotAuthenticated
	}
	if !user.CanCreateRecord(u) {
		return "", fmt.Errorf("create record: %w", ErrPermissionDenied)
	}

	if filePath != "" {
		fileRef, err := a.uploadFile(ctx, filePath)
		if err != nil {
			return "", err
		}
		data.FileCID = fileRef
	}

	if data.Timestamp == "" {
		data.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	ref, err := a.gateway.PinJSON(ctx, data)
	if err != nil {
		return "", fmt.Errorf("pin record: %w", err)
	}

	if err := a.store.AddRecord(ctx, ref); err != nil {
		return "", err
	}

	a.touchState()
	return ref, nil
}

func (a *App) uploadFile(ctx context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat file: %w", err)
	}

	name := filepath.Base(path)
	mimeType := mime.TypeByExtension(filepath.Ext(name))
	if err := ValidateFile(name, info.Size(), mimeType); err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return a.gateway.PinFile(ctx, name, f)
}

// DeleteRecord removes a record after an ownership-aware permission check
// against the concrete record.
func (a *App) DeleteRecord(id string) error {
	u := a.session.Current()
	if u == nil {
		return ErrNotAuthenticated
	}

	for _, rec := range a.store.Records() {
		if rec.ID != id {
			continue
		}
		if !user.CanDeleteRecord(u, rec) {
			return fmt.Errorf("delete record %s: %w", id, ErrPermissionDenied)
		}
	}

	a.store.DeleteRecord(id)
	a.touchState()
	return nil
}

// VisibleRecords returns the records the current user may view, in store
// order.
func (a *App) VisibleRecords() []*record.MedicalRecord {
	return a.visible(a.store.Records())
}

// SearchRecords runs the keyword search and filters the result down to what
// the current user may view.
func (a *App) SearchRecords(query string) []*record.MedicalRecord {
	return a.visible(a.store.Search(query))
}

// RecordsByPatient returns the visible records for one patient.
func (a *App) RecordsByPatient(patientID string) []*record.MedicalRecord {
	return a.visible(a.store.RecordsByPatient(patientID))
}

// RecordsByDoctor returns the visible records for one doctor.
func (a *App) RecordsByDoctor(doctorID string) []*record.MedicalRecord {
	return a.visible(a.store.RecordsByDoctor(doctorID))
}

func (a *App) visible(records []*record.MedicalRecord) []*record.MedicalRecord {
	u := a.session.Current()

	out := make([]*record.MedicalRecord, 0, len(records))
	for _, rec := range records {
		if user.CanViewRecord(u, rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Loading reports whether an import is in flight.
func (a *App) Loading() bool {
	return a.store.Loading()
}

// Store exposes the record store to callers that do their own permission
// handling.
func (a *App) Store() *Store {
	return a.store
}

// ClientID returns the stable identifier of this client installation.
func (a *App) ClientID() string {
	return a.state.ClientID
}

func (a *App) Close() error {
	return a.storage.Close()
}
