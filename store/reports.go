package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/navs23/fundinsights"
	"github.com/sirupsen/logrus"
)

// Reports manages the saved report collection, reports are identified by name.
type Reports struct {
	backend  Backend
	validate *validator.Validate
	log      logrus.FieldLogger
}

// NewReports returns a collection persisted in backend.
func NewReports(backend Backend, log logrus.FieldLogger) *Reports {
	v := validator.New()
	// report errors with their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Reports{backend: backend, validate: v, log: log}
}

// Close releases the backend.
func (r *Reports) Close() error { return r.backend.Close() }

func (r *Reports) check(rep fundinsights.SavedReport) error {
	err := r.validate.Struct(rep)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, len(verrs))
		for i, fe := range verrs {
			fields[i] = fe.Field()
		}
		return fmt.Errorf("invalid report: missing %s", strings.Join(fields, ", "))
	}
	return err
}

// Save stores rawData under name. An empty name is derived from the
// statement months with [fundinsights.AutoReportName].
//
// A report with the same name is overwritten in place, overwritten is then
// true; otherwise the report is appended. It returns ErrNothingToSave when
// rawData is blank.
func (r *Reports) Save(ctx context.Context, name, rawData string) (rep fundinsights.SavedReport, overwritten bool, err error) {
	rawData = strings.TrimSpace(rawData)
	if rawData == "" {
		return rep, false, ErrNothingToSave
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = fundinsights.AutoReportName(rawData)
	}
	rep = fundinsights.SavedReport{Name: name, RawData: rawData}
	if err := r.check(rep); err != nil {
		return rep, false, err
	}

	reports, err := r.backend.Load(ctx)
	if err != nil {
		return rep, false, err
	}
	if i := index(reports, name); i >= 0 {
		reports[i] = rep
		overwritten = true
	} else {
		reports = append(reports, rep)
	}
	if err := r.backend.Store(ctx, reports); err != nil {
		return rep, false, err
	}
	r.log.WithFields(logrus.Fields{"name": name, "overwritten": overwritten}).Info("saved report")
	return rep, overwritten, nil
}

// Rename renames the report oldName to newName, keeping its position.
//
// A blank or unchanged newName does nothing. It fails with ErrNotFound if
// there is no oldName, and with ErrNameExists if another report is already
// called newName.
func (r *Reports) Rename(ctx context.Context, oldName, newName string) error {
	reports, err := r.backend.Load(ctx)
	if err != nil {
		return err
	}
	i := index(reports, oldName)
	if i < 0 {
		return fmt.Errorf("cannot rename %q: %w", oldName, ErrNotFound)
	}
	newName = strings.TrimSpace(newName)
	if newName == "" || newName == oldName {
		return nil
	}
	if index(reports, newName) >= 0 {
		return fmt.Errorf("cannot rename %q to %q: %w", oldName, newName, ErrNameExists)
	}
	reports[i].Name = newName
	if err := r.backend.Store(ctx, reports); err != nil {
		return err
	}
	r.log.WithFields(logrus.Fields{"from": oldName, "to": newName}).Info("renamed report")
	return nil
}

// Delete removes the report called name.
func (r *Reports) Delete(ctx context.Context, name string) error {
	reports, err := r.backend.Load(ctx)
	if err != nil {
		return err
	}
	i := index(reports, name)
	if i < 0 {
		return fmt.Errorf("cannot delete %q: %w", name, ErrNotFound)
	}
	if err := r.backend.Store(ctx, slices.Delete(reports, i, i+1)); err != nil {
		return err
	}
	r.log.WithField("name", name).Info("deleted report")
	return nil
}

// Get returns the report called name.
func (r *Reports) Get(ctx context.Context, name string) (fundinsights.SavedReport, error) {
	reports, err := r.backend.Load(ctx)
	if err != nil {
		return fundinsights.SavedReport{}, err
	}
	i := index(reports, name)
	if i < 0 {
		return fundinsights.SavedReport{}, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return reports[i], nil
}

// List returns all reports, in the order they were first saved.
func (r *Reports) List(ctx context.Context) ([]fundinsights.SavedReport, error) {
	return r.backend.Load(ctx)
}

// Last returns the most recently appended report, or ErrNotFound when the
// collection is empty.
func (r *Reports) Last(ctx context.Context) (fundinsights.SavedReport, error) {
	reports, err := r.backend.Load(ctx)
	if err != nil {
		return fundinsights.SavedReport{}, err
	}
	if len(reports) == 0 {
		return fundinsights.SavedReport{}, fmt.Errorf("no saved report: %w", ErrNotFound)
	}
	return reports[len(reports)-1], nil
}

func index(reports []fundinsights.SavedReport, name string) int {
	return slices.IndexFunc(reports, func(r fundinsights.SavedReport) bool { return r.Name == name })
}
