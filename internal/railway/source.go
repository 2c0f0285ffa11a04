package railway

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AnatoleLucet/railway-timeline/internal/deploy"
)

// fetchConcurrency bounds parallel requests while loading a snapshot.
const fetchConcurrency = 4

// Source loads a deploy.Snapshot for one project environment. Empty IDs are
// resolved automatically when exactly one candidate exists.
type Source struct {
	Client        *Client
	ProjectID     string
	EnvironmentID string

	// Now stamps FetchedAt. Defaults to time.Now.
	Now func() time.Time
}

// Describe implements deploy.Source.
func (s *Source) Describe() string {
	if s.ProjectID == "" {
		return "railway"
	}
	return "railway project " + s.ProjectID
}

// Load implements deploy.Source.
func (s *Source) Load(ctx context.Context) (deploy.Snapshot, error) {
	projectID, err := s.resolveProject(ctx)
	if err != nil {
		return deploy.Snapshot{}, err
	}
	environmentID, err := s.resolveEnvironment(ctx, projectID)
	if err != nil {
		return deploy.Snapshot{}, err
	}

	var (
		project     deploy.Project
		environment deploy.Environment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		project, err = s.Client.Project(gctx, projectID)
		return err
	})
	g.Go(func() error {
		var err error
		environment, err = s.Client.Environment(gctx, environmentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return deploy.Snapshot{}, err
	}

	if err := s.loadDeployments(ctx, &project, environmentID); err != nil {
		return deploy.Snapshot{}, err
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return deploy.Snapshot{
		Project:     project,
		Environment: environment,
		FetchedAt:   now(),
	}, nil
}

// loadDeployments fills every service's deployments and their events.
func (s *Source) loadDeployments(ctx context.Context, project *deploy.Project, environmentID string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i := range project.Services {
		svc := &project.Services[i]
		g.Go(func() error {
			deployments, err := s.Client.Deployments(gctx, svc.ID, environmentID)
			if err != nil {
				return err
			}
			svc.Deployments = deployments
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)
	for i := range project.Services {
		for j := range project.Services[i].Deployments {
			d := &project.Services[i].Deployments[j]
			g.Go(func() error {
				events, err := s.Client.DeploymentEvents(gctx, d.ID)
				if err != nil {
					return err
				}
				d.Events = events
				return nil
			})
		}
	}
	return g.Wait()
}

func (s *Source) resolveProject(ctx context.Context) (string, error) {
	if s.ProjectID != "" {
		return s.ProjectID, nil
	}
	refs, err := s.Client.Projects(ctx)
	if err != nil {
		return "", err
	}
	ref, ok := deploy.Pick(refs)
	if !ok {
		return "", &SelectionError{Kind: "project", Choices: describeRefs(refs)}
	}
	s.Client.log.Info("auto-selected project", "id", ref.ID, "name", ref.Name)
	return ref.ID, nil
}

func (s *Source) resolveEnvironment(ctx context.Context, projectID string) (string, error) {
	if s.EnvironmentID != "" {
		return s.EnvironmentID, nil
	}
	refs, err := s.Client.Environments(ctx, projectID)
	if err != nil {
		return "", err
	}
	ref, ok := deploy.Pick(refs)
	if !ok {
		return "", &SelectionError{Kind: "environment", Choices: describeRefs(refs)}
	}
	s.Client.log.Info("auto-selected environment", "id", ref.ID, "name", ref.Name)
	return ref.ID, nil
}

func describeRefs(refs []deploy.Ref) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, fmt.Sprintf("%s (%s)", r.Name, r.ID))
	}
	return out
}
