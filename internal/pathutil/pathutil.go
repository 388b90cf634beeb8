// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	stateFileName  string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	stateFilePath  string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = &Paths{
			configDir:      "pomobar",
			configFileName: "config.yml",
			stateFileName:  "state.json",
			logFileName:    "pomobar.log",
		}

		paths.applyEnvironmentOverrides()
		initErr = paths.computePaths()
	})

	return initErr
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return Must().configDir
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func StateFilePath() string {
	return Must().stateFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	pomobarEnv := strings.TrimSpace(os.Getenv("POMOBAR_ENV"))
	if pomobarEnv != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", pomobarEnv)
		p.stateFileName = fmt.Sprintf("state_%s.json", pomobarEnv)
		p.logFileName = fmt.Sprintf("pomobar_%s.log", pomobarEnv)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(p.configDir)
	if err != nil {
		return err
	}

	p.stateFilePath = filepath.Join(dataDir, p.stateFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
