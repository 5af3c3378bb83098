package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/rolodex-labs/rolodex/internal/document"
	"github.com/rolodex-labs/rolodex/internal/entity"
	"github.com/spf13/cobra"
)

var jsonOut = jsoniter.ConfigCompatibleWithStandardLibrary

// recordView is the JSON shape of a record in command output.
type recordView struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func viewOf(rec entity.Record) recordView {
	return recordView{ID: rec.ID, Name: rec.Name, Email: rec.Email}
}

// openRegistry loads the registry document, or returns an empty registry
// when the document does not exist yet. A document written for another
// entity noun than entity.name is refused.
func openRegistry() (*entity.Registry, error) {
	// The entity noun ends up in exported documents and must pass the schema.
	if err := document.ValidateEntity(settings.EntityName); err != nil {
		return nil, fmt.Errorf("entity.name setting: %w", err)
	}
	r := entity.NewRegistry(entity.WithEntityName(settings.EntityName))

	path := settings.RegistryFile
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		logger.Debug("registry document not found, starting empty", slog.String("path", path))
		return r, nil
	}

	if err := r.LoadFile(path); err != nil {
		return nil, err
	}
	if r.EntityName() != settings.EntityName {
		return nil, fmt.Errorf("%s holds %s records but entity.name is %q; set entity.name or use --file",
			path, r.EntityName(), settings.EntityName)
	}
	logger.Debug("registry loaded", slog.String("path", path), slog.Int("records", r.Len()))
	return r, nil
}

// saveRegistry writes the registry back to its document.
func saveRegistry(r *entity.Registry) error {
	path := settings.RegistryFile
	if err := r.ExportFile(path, document.EncodingForPath(path)); err != nil {
		return fmt.Errorf("saving registry: %w", err)
	}
	logger.Debug("registry saved", slog.String("path", path), slog.Int("records", r.Len()))
	return nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	data, err := jsonOut.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
