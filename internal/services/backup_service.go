package services

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"study-planner/internal/domain"
	"study-planner/internal/errors"
	"study-planner/internal/logging"
	"study-planner/internal/repository"
)

const (
	// BackupVersion is written into every export; imports do not check it
	BackupVersion = "1.0"

	backupFilePrefix = "studyplanner-backup-"
	exportDateLayout = "2006-01-02T15:04:05.000Z07:00"
)

// backupDocument is the exported file layout
type backupDocument struct {
	Tasks      []domain.Task      `json:"tasks"`
	Settings   domain.AppSettings `json:"settings"`
	ExportDate string             `json:"exportDate"`
	Version    string             `json:"version"`
}

// backupServiceImpl implements the BackupService interface
type backupServiceImpl struct {
	tasks    repository.TaskRepository
	settings repository.SettingsRepository
}

// NewBackupService creates a new BackupService instance
func NewBackupService(tasks repository.TaskRepository, settings repository.SettingsRepository) BackupService {
	return &backupServiceImpl{
		tasks:    tasks,
		settings: settings,
	}
}

// BackupFilename returns the export file name for the UTC date of now
func BackupFilename(now time.Time) string {
	return backupFilePrefix + now.UTC().Format("2006-01-02") + ".json"
}

// Export serialises the tasks and settings as indented JSON
func (b *backupServiceImpl) Export(ctx context.Context, now time.Time) (*Artifact, error) {
	tasks, err := b.tasks.List(ctx)
	if err != nil {
		return nil, errors.NewExportError("read tasks", err)
	}
	settings, err := b.settings.Get(ctx)
	if err != nil {
		return nil, errors.NewExportError("read settings", err)
	}

	doc := backupDocument{
		Tasks:      tasks,
		Settings:   settings,
		ExportDate: now.UTC().Format(exportDateLayout),
		Version:    BackupVersion,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.NewExportError("encode backup", err)
	}

	logging.WithFields(map[string]interface{}{"tasks": len(tasks)}).Info("export prepared")
	return &Artifact{Filename: BackupFilename(now), Data: data}, nil
}

// Import applies a backup document. Every present section is decoded before
// anything is written, so a malformed document changes nothing. Sections that
// are absent or null are left untouched; settings fields missing from the
// document take their defaults.
func (b *backupServiceImpl) Import(ctx context.Context, data []byte) (*ImportResult, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errors.NewImportFormatError("backup must be a JSON object", nil)
	}

	var sections map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &sections); err != nil {
		return nil, errors.NewImportFormatError("backup is not valid JSON", err)
	}

	result := &ImportResult{}
	var tasks []domain.Task
	if raw, ok := present(sections, "tasks"); ok {
		if err := json.Unmarshal(raw, &tasks); err != nil {
			return nil, errors.NewImportFormatError("tasks must be a list of tasks", err)
		}
		result.TasksImported = true
		result.TaskCount = len(tasks)
	}

	settings := domain.DefaultSettings()
	if raw, ok := present(sections, "settings"); ok {
		if raw[0] != '{' {
			return nil, errors.NewImportFormatError("settings must be an object", nil)
		}
		if err := json.Unmarshal(raw, &settings); err != nil {
			return nil, errors.NewImportFormatError("settings has the wrong shape", err)
		}
		result.SettingsImported = true
	}

	if raw, ok := present(sections, "version"); ok {
		if err := json.Unmarshal(raw, &result.Version); err != nil {
			logging.Debugf("ignoring backup version %s: %v", raw, err)
		}
	}

	if result.TasksImported {
		if err := b.tasks.Replace(ctx, tasks); err != nil {
			return nil, err
		}
	}
	if result.SettingsImported {
		if err := b.settings.Save(ctx, settings); err != nil {
			return nil, err
		}
	}

	logging.WithFields(map[string]interface{}{
		"tasks":    result.TaskCount,
		"settings": result.SettingsImported,
	}).Info("backup imported")
	return result, nil
}

// present returns a section that exists and is not JSON null
func present(sections map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := sections[key]
	if !ok {
		return nil, false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, false
	}
	return raw, true
}

// ClearAll empties the task list and restores the default settings
func (b *backupServiceImpl) ClearAll(ctx context.Context) error {
	if err := b.tasks.Clear(ctx); err != nil {
		return err
	}
	if err := b.settings.Reset(ctx); err != nil {
		return err
	}
	logging.Infof("all tasks and settings cleared")
	return nil
}
