// Package filesystem provisions the application's on-disk layout.
package filesystem

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/modelsync-hq/modelsync/internal/config"
)

type PathType string

const (
	configYamlFileName = "config.yaml"
	catalogFileName    = "models.json"
	historyDBFileName  = "sync_history.db"

	AppDirectory    PathType = "app"
	CacheDirectory  PathType = "cache"
	ConfigDirectory PathType = "config"
	ConfigFilePath  PathType = "config_file"
	LogsDirectory   PathType = "logs"
	LogsFilePath    PathType = "log_file"
	DataDirectory   PathType = "data"
	CatalogFilePath PathType = "catalog_file"
	SyncHistoryDB   PathType = "sync_history_db"
)

// Filesystem contains the methods to interact with local storage.
type Filesystem struct {
	appCfg *config.AppConfig
}

// NewAppFilesystem creates a new Filesystem instance.
func NewAppFilesystem(appCfg *config.AppConfig) *Filesystem {
	return &Filesystem{
		appCfg: appCfg,
	}
}

// EnsureAllPaths creates every directory and file the application needs and
// returns their locations keyed by PathType.
func (s *Filesystem) EnsureAllPaths() (map[PathType]string, error) {
	paths := map[PathType]string{}

	appDirectory, err := s.EnsureAppDirectory()
	if err != nil {
		return paths, err
	}
	paths[AppDirectory] = appDirectory

	for _, dir := range []struct {
		pathType PathType
		name     string
	}{
		{CacheDirectory, "cache"},
		{ConfigDirectory, "config"},
		{LogsDirectory, "logs"},
		{DataDirectory, "data"},
	} {
		fullPath := filepath.Join(appDirectory, dir.name)
		if _, err := os.Stat(fullPath); os.IsNotExist(err) {
			if err := os.MkdirAll(fullPath, 0755); err != nil {
				return paths, err
			}
		}
		paths[dir.pathType] = fullPath
	}

	// sync run history lives in a SQLite file under the data directory
	historyDBFilePath, err := s.CreateSQLiteDBFile(paths[DataDirectory], historyDBFileName)
	if err != nil {
		return paths, err
	}
	paths[SyncHistoryDB] = historyDBFilePath

	// the catalog file itself is created on first sync; only its
	// default location is resolved here
	paths[CatalogFilePath] = filepath.Join(paths[DataDirectory], catalogFileName)

	configFilePath := filepath.Join(paths[ConfigDirectory], configYamlFileName)
	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		if _, err := os.Create(configFilePath); err != nil {
			return paths, err
		}
	}
	paths[ConfigFilePath] = configFilePath

	logFilePath := filepath.Join(paths[LogsDirectory], fmt.Sprintf("%s.log", strings.ToLower(s.appCfg.Name)))
	if _, err := os.Stat(logFilePath); os.IsNotExist(err) {
		if _, err := os.Create(logFilePath); err != nil {
			return paths, err
		}
	}
	paths[LogsFilePath] = logFilePath

	return paths, nil
}

// EnsureAppDirectory creates the hidden application directory in the user's
// home directory if it does not exist yet.
func (s *Filesystem) EnsureAppDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(homeDir, fmt.Sprintf(".%s", strings.ToLower(s.appCfg.Name)))

	if _, err := os.Stat(appDir); os.IsNotExist(err) {
		if err := os.MkdirAll(appDir, 0755); err != nil {
			return "", err
		}
	}

	return appDir, nil
}

// CreateSQLiteDBFile creates an empty SQLite database file in the given
// directory and verifies it can be opened.
func (s *Filesystem) CreateSQLiteDBFile(dataDirectory, fileName string) (string, error) {
	dbFilePath := filepath.Join(dataDirectory, fileName)
	if _, err := os.Stat(dbFilePath); err == nil {
		return dbFilePath, nil
	}

	file, err := os.Create(dbFilePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	sqliteDB, err := sql.Open("sqlite3", dbFilePath)
	if err != nil {
		return "", err
	}
	defer sqliteDB.Close()

	if err := sqliteDB.Ping(); err != nil {
		return "", err
	}

	return dbFilePath, nil
}
