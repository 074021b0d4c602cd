// Package fs executes resolved actions against the local filesystem. It is
// the single place in the codebase that performs file side effects.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/srinivasagudi0/Stark-Assistant/internal/domain"
	"github.com/srinivasagudi0/Stark-Assistant/internal/ports"
)

const writeFileMode = 0o644

type Executor struct {
	// root, when non-empty, confines every target to this directory.
	// Empty disables confinement.
	root string
}

var _ ports.Executor = (*Executor)(nil)

func NewExecutor(root string) *Executor {
	if root != "" {
		// checkRoot compares absolute paths, so a relative root must
		// be anchored here or every target would fall outside it.
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		} else {
			root = filepath.Clean(root)
		}
	}
	return &Executor{root: root}
}

func (e *Executor) Execute(ctx context.Context, action domain.ResolvedAction) (domain.ExecutionResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ExecutionResult{}, err
	}

	if err := e.checkRoot(action.Target); err != nil {
		return domain.ExecutionResult{}, err
	}

	switch action.Verb {
	case domain.VerbRead:
		return e.read(action)
	case domain.VerbWrite:
		return e.write(action)
	case domain.VerbAppend:
		return e.append(action)
	case domain.VerbDelete:
		return e.delete(action)
	default:
		return domain.ExecutionResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownVerb, action.Verb)
	}
}

func (e *Executor) read(action domain.ResolvedAction) (domain.ExecutionResult, error) {
	info, err := os.Stat(action.Target)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ExecutionResult{}, fmt.Errorf("%w: %s", domain.ErrTargetNotFound, action.Target)
		}
		return domain.ExecutionResult{}, fmt.Errorf("stat target: %w", err)
	}
	if !info.Mode().IsRegular() {
		return domain.ExecutionResult{}, fmt.Errorf("%w: %s is not a regular file", domain.ErrAccess, action.Target)
	}

	data, err := os.ReadFile(action.Target)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return domain.ExecutionResult{}, fmt.Errorf("%w: no read permission for %s", domain.ErrAccess, action.Target)
		}
		return domain.ExecutionResult{}, fmt.Errorf("read target: %w", err)
	}

	return result(action, string(data)), nil
}

func (e *Executor) write(action domain.ResolvedAction) (domain.ExecutionResult, error) {
	payload := ""
	if action.Payload != nil {
		payload = *action.Payload
	}

	if err := os.WriteFile(action.Target, []byte(payload), writeFileMode); err != nil {
		if errors.Is(err, os.ErrPermission) || errors.Is(err, os.ErrNotExist) {
			return domain.ExecutionResult{}, fmt.Errorf("%w: cannot write %s", domain.ErrAccess, action.Target)
		}
		return domain.ExecutionResult{}, fmt.Errorf("write target: %w", err)
	}

	return result(action, fmt.Sprintf("Wrote %d bytes to %s.", len(payload), action.Target)), nil
}

func (e *Executor) append(action domain.ResolvedAction) (domain.ExecutionResult, error) {
	// Append never creates the target implicitly.
	if _, err := os.Stat(action.Target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ExecutionResult{}, fmt.Errorf("%w: %s", domain.ErrTargetNotFound, action.Target)
		}
		return domain.ExecutionResult{}, fmt.Errorf("stat target: %w", err)
	}

	file, err := os.OpenFile(action.Target, os.O_WRONLY|os.O_APPEND, writeFileMode)
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return domain.ExecutionResult{}, fmt.Errorf("%w: no write permission for %s", domain.ErrAccess, action.Target)
		}
		return domain.ExecutionResult{}, fmt.Errorf("open target for append: %w", err)
	}

	payload := ""
	if action.Payload != nil {
		payload = *action.Payload
	}

	if _, err := io.WriteString(file, payload); err != nil {
		_ = file.Close()
		return domain.ExecutionResult{}, fmt.Errorf("append to target: %w", err)
	}
	if err := file.Close(); err != nil {
		return domain.ExecutionResult{}, fmt.Errorf("close target: %w", err)
	}

	return result(action, fmt.Sprintf("Appended %d bytes to %s.", len(payload), action.Target)), nil
}

func (e *Executor) delete(action domain.ResolvedAction) (domain.ExecutionResult, error) {
	if _, err := os.Stat(action.Target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.ExecutionResult{}, fmt.Errorf("%w: %s", domain.ErrTargetNotFound, action.Target)
		}
		return domain.ExecutionResult{}, fmt.Errorf("stat target: %w", err)
	}

	if err := os.Remove(action.Target); err != nil {
		if errors.Is(err, os.ErrPermission) {
			return domain.ExecutionResult{}, fmt.Errorf("%w: no permission to delete %s", domain.ErrAccess, action.Target)
		}
		return domain.ExecutionResult{}, fmt.Errorf("delete target: %w", err)
	}

	return result(action, fmt.Sprintf("Deleted %s.", action.Target)), nil
}

func (e *Executor) checkRoot(target string) error {
	if e.root == "" {
		return nil
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("resolve target path: %w", err)
	}

	rel, err := filepath.Rel(e.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s is outside %s", domain.ErrAccess, target, e.root)
	}

	return nil
}

func result(action domain.ResolvedAction, detail string) domain.ExecutionResult {
	return domain.ExecutionResult{
		Verb:    action.Verb,
		Target:  action.Target,
		Success: true,
		Detail:  detail,
	}
}
