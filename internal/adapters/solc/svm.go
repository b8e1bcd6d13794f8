package solc

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/madrazzl3/solbuild/internal/usecase"
)

// SvmResolver finds or installs exact solc versions through svm, the same
// version manager forge uses.
type SvmResolver struct {
	log *slog.Logger
}

// NewSvmResolver creates a new solc version resolver.
func NewSvmResolver(log *slog.Logger) *SvmResolver {
	return &SvmResolver{log: log.With("component", "SvmResolver")}
}

// FindOrInstall returns the path of the solc binary for version, installing
// it when missing. Download retries are svm's concern, not ours.
func (r *SvmResolver) FindOrInstall(ctx context.Context, version string) (string, error) {
	binary, err := r.binaryPath(version)
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(binary); err == nil {
		return binary, nil
	}

	r.log.Debug("installing solc", "version", version)
	cmd := exec.CommandContext(ctx, "svm", "install", version)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("failed to install solc %s: %w\nOutput: %s", version, err, string(output))
	}

	if _, err := os.Stat(binary); err != nil {
		return "", fmt.Errorf("solc %s not found after install: %w", version, err)
	}
	return binary, nil
}

func (r *SvmResolver) binaryPath(version string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".svm", version, "solc-"+version), nil
}

var _ usecase.SolcResolver = (*SvmResolver)(nil)
