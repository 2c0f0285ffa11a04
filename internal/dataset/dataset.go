// Package dataset loads deployment timelines from YAML files, for browsing
// without a Railway account or for replaying a captured environment.
//
// A minimal file:
//
//	environment:
//	  name: production
//	  created_at: 2023-01-01
//	services:
//	  - name: api
//	    deployments:
//	      - id: d1
//	        status: SUCCESS
//	        start: 2023-01-04T10:00:00Z
//	        end: 2023-01-04T10:06:00Z
//
// Deployments list either start/end or the full events.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AnatoleLucet/railway-timeline/internal/deploy"
	"github.com/AnatoleLucet/railway-timeline/internal/logging"
	"github.com/AnatoleLucet/railway-timeline/internal/timeutil"
)

// ErrInvalidRange reports a range whose end is before its start.
var ErrInvalidRange = errors.New("invalid range")

type fileRange struct {
	Start time.Time `yaml:"start"`
	End   time.Time `yaml:"end"`
}

type fileEvent struct {
	ID          string    `yaml:"id"`
	Step        string    `yaml:"step"`
	CreatedAt   time.Time `yaml:"created_at"`
	CompletedAt time.Time `yaml:"completed_at"`
}

type fileDeployment struct {
	ID              string      `yaml:"id"`
	Status          string      `yaml:"status"`
	CreatedAt       time.Time   `yaml:"created_at"`
	StatusUpdatedAt time.Time   `yaml:"status_updated_at"`
	Start           time.Time   `yaml:"start"`
	End             time.Time   `yaml:"end"`
	Events          []fileEvent `yaml:"events"`
}

type fileService struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	CreatedAt   time.Time        `yaml:"created_at"`
	DeletedAt   time.Time        `yaml:"deleted_at"`
	Deployments []fileDeployment `yaml:"deployments"`
}

type fileEnvironment struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	CreatedAt time.Time `yaml:"created_at"`
	DeletedAt time.Time `yaml:"deleted_at"`
}

type fileProject struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type document struct {
	Project         fileProject     `yaml:"project"`
	Environment     fileEnvironment `yaml:"environment"`
	Range           *fileRange      `yaml:"range"`
	InitialViewport *fileRange      `yaml:"initial_viewport"`
	Services        []fileService   `yaml:"services"`
}

// File is a deploy.Source backed by a YAML file on disk.
type File struct {
	Path string
	Log  *slog.Logger
}

// NewFile returns a source reading path.
func NewFile(path string) *File {
	return &File{Path: path, Log: logging.New("dataset")}
}

// Describe implements deploy.Source.
func (f *File) Describe() string { return f.Path }

// Load implements deploy.Source.
func (f *File) Load(ctx context.Context) (deploy.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return deploy.Snapshot{}, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return deploy.Snapshot{}, fmt.Errorf("read dataset: %w", err)
	}
	snap, err := Parse(data, f.Log)
	if err != nil {
		return deploy.Snapshot{}, fmt.Errorf("%s: %w", f.Path, err)
	}
	if snap.FetchedAt.IsZero() {
		if info, err := os.Stat(f.Path); err == nil {
			snap.FetchedAt = info.ModTime()
		}
	}
	return snap, nil
}

// Parse decodes a dataset document. Unknown statuses are kept and logged.
func Parse(data []byte, log *slog.Logger) (deploy.Snapshot, error) {
	if log == nil {
		log = logging.New("dataset")
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return deploy.Snapshot{}, fmt.Errorf("parse dataset: %w", err)
	}

	snap := deploy.Snapshot{
		Project: deploy.Project{ID: doc.Project.ID, Name: doc.Project.Name},
		Environment: deploy.Environment{
			ID:        doc.Environment.ID,
			Name:      doc.Environment.Name,
			CreatedAt: doc.Environment.CreatedAt,
			DeletedAt: doc.Environment.DeletedAt,
		},
	}

	var err error
	if snap.Range, err = convertRange("range", doc.Range); err != nil {
		return deploy.Snapshot{}, err
	}
	if snap.InitialViewport, err = convertRange("initial_viewport", doc.InitialViewport); err != nil {
		return deploy.Snapshot{}, err
	}

	for i, fs := range doc.Services {
		svc := deploy.Service{
			ID:        fs.ID,
			Name:      fs.Name,
			CreatedAt: fs.CreatedAt,
			DeletedAt: fs.DeletedAt,
		}
		if svc.ID == "" {
			svc.ID = fmt.Sprintf("service-%d", i+1)
		}
		if svc.Name == "" {
			svc.Name = svc.ID
		}
		for j, fd := range fs.Deployments {
			d, err := convertDeployment(fd)
			if err != nil {
				return deploy.Snapshot{}, fmt.Errorf("service %q deployment %d: %w", svc.Name, j+1, err)
			}
			if d.ID == "" {
				d.ID = fmt.Sprintf("%s-%d", svc.ID, j+1)
			}
			if !d.Status.Known() {
				log.Warn("unknown deployment status", "service", svc.Name, "deployment", d.ID, "status", d.Status)
			}
			svc.Deployments = append(svc.Deployments, d)
		}
		snap.Project.Services = append(snap.Project.Services, svc)
	}
	return snap, nil
}

func convertRange(field string, fr *fileRange) (*timeutil.Range, error) {
	if fr == nil {
		return nil, nil
	}
	r := timeutil.NewRange(fr.Start, fr.End)
	if !r.Valid() {
		return nil, fmt.Errorf("%s: %w: %s is not after %s", field, ErrInvalidRange, fr.End.Format(time.RFC3339), fr.Start.Format(time.RFC3339))
	}
	return &r, nil
}

func convertDeployment(fd fileDeployment) (deploy.Deployment, error) {
	d := deploy.Deployment{
		ID:              fd.ID,
		Status:          deploy.Status(fd.Status),
		CreatedAt:       fd.CreatedAt,
		StatusUpdatedAt: fd.StatusUpdatedAt,
	}
	for _, fe := range fd.Events {
		d.Events = append(d.Events, deploy.Event{
			ID:          fe.ID,
			Step:        fe.Step,
			CreatedAt:   fe.CreatedAt,
			CompletedAt: fe.CompletedAt,
		})
	}

	if len(d.Events) == 0 && !fd.Start.IsZero() {
		end := fd.End
		if end.IsZero() {
			end = fd.Start
		}
		if end.Before(fd.Start) {
			return deploy.Deployment{}, fmt.Errorf("%w: end %s before start %s", ErrInvalidRange, end.Format(time.RFC3339), fd.Start.Format(time.RFC3339))
		}
		d.Events = []deploy.Event{
			{Step: "START", CreatedAt: fd.Start},
			{Step: "END", CreatedAt: end},
		}
	}

	if d.CreatedAt.IsZero() {
		if r, ok := d.Range(); ok {
			d.CreatedAt = r.Start
		}
	}
	if d.Status == "" {
		d.Status = deploy.StatusSuccess
	}
	return d, nil
}
