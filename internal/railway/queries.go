package railway

import (
	"context"
	"fmt"
	"time"

	"github.com/AnatoleLucet/railway-timeline/internal/deploy"
)

const projectsQuery = `query projects {
  projects {
    edges { node { id name } }
  }
}`

const projectQuery = `query project($projectId: String!) {
  project(id: $projectId) {
    id
    name
    services {
      edges { node { id name createdAt deletedAt } }
    }
  }
}`

const environmentsQuery = `query environments($projectId: String!) {
  environments(projectId: $projectId) {
    edges { node { id name } }
  }
}`

const environmentQuery = `query environment($environmentId: String!) {
  environment(id: $environmentId) {
    id
    name
    createdAt
    deletedAt
  }
}`

const deploymentsQuery = `query deployments($serviceId: String, $environmentId: String) {
  deployments(input: { serviceId: $serviceId, environmentId: $environmentId }) {
    edges { node { id status createdAt statusUpdatedAt } }
  }
}`

const deploymentEventsQuery = `query deploymentEvents($deploymentId: String!) {
  deploymentEvents(id: $deploymentId) {
    edges { node { id step createdAt completedAt } }
  }
}`

type connection[T any] struct {
	Edges []struct {
		Node T `json:"node"`
	} `json:"edges"`
}

func (c connection[T]) nodes() []T {
	out := make([]T, 0, len(c.Edges))
	for _, e := range c.Edges {
		out = append(out, e.Node)
	}
	return out
}

type refNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type serviceNode struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

type environmentNode struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	DeletedAt *time.Time `json:"deletedAt"`
}

type deploymentNode struct {
	ID              string     `json:"id"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	StatusUpdatedAt *time.Time `json:"statusUpdatedAt"`
}

type eventNode struct {
	ID          string     `json:"id"`
	Step        string     `json:"step"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt"`
}

func deref(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

func toRefs(nodes []refNode) []deploy.Ref {
	out := make([]deploy.Ref, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, deploy.Ref{ID: n.ID, Name: n.Name})
	}
	return out
}

// Projects lists the projects visible to the token.
func (c *Client) Projects(ctx context.Context) ([]deploy.Ref, error) {
	var data struct {
		Projects connection[refNode] `json:"projects"`
	}
	if err := c.query(ctx, "projects", projectsQuery, nil, &data); err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	return toRefs(data.Projects.nodes()), nil
}

// Project returns a project with its services. Services carry no
// deployments yet.
func (c *Client) Project(ctx context.Context, projectID string) (deploy.Project, error) {
	var data struct {
		Project *struct {
			ID       string                  `json:"id"`
			Name     string                  `json:"name"`
			Services connection[serviceNode] `json:"services"`
		} `json:"project"`
	}
	vars := map[string]any{"projectId": projectID}
	if err := c.query(ctx, "project", projectQuery, vars, &data); err != nil {
		return deploy.Project{}, fmt.Errorf("failed to fetch project: %w", err)
	}
	if data.Project == nil {
		return deploy.Project{}, fmt.Errorf("failed to fetch project: %q not found", projectID)
	}
	p := deploy.Project{ID: data.Project.ID, Name: data.Project.Name}
	for _, n := range data.Project.Services.nodes() {
		p.Services = append(p.Services, deploy.Service{
			ID:        n.ID,
			Name:      n.Name,
			CreatedAt: n.CreatedAt,
			DeletedAt: deref(n.DeletedAt),
		})
	}
	return p, nil
}

// Environments lists a project's environments.
func (c *Client) Environments(ctx context.Context, projectID string) ([]deploy.Ref, error) {
	var data struct {
		Environments connection[refNode] `json:"environments"`
	}
	vars := map[string]any{"projectId": projectID}
	if err := c.query(ctx, "environments", environmentsQuery, vars, &data); err != nil {
		return nil, fmt.Errorf("failed to fetch environments: %w", err)
	}
	return toRefs(data.Environments.nodes()), nil
}

// Environment returns a single environment.
func (c *Client) Environment(ctx context.Context, environmentID string) (deploy.Environment, error) {
	var data struct {
		Environment *environmentNode `json:"environment"`
	}
	vars := map[string]any{"environmentId": environmentID}
	if err := c.query(ctx, "environment", environmentQuery, vars, &data); err != nil {
		return deploy.Environment{}, fmt.Errorf("failed to fetch environment: %w", err)
	}
	if data.Environment == nil {
		return deploy.Environment{}, fmt.Errorf("failed to fetch environment: %q not found", environmentID)
	}
	n := data.Environment
	return deploy.Environment{
		ID:        n.ID,
		Name:      n.Name,
		CreatedAt: n.CreatedAt,
		DeletedAt: deref(n.DeletedAt),
	}, nil
}

// Deployments lists a service's deployments in an environment. Events are
// not included.
func (c *Client) Deployments(ctx context.Context, serviceID, environmentID string) ([]deploy.Deployment, error) {
	var data struct {
		Deployments connection[deploymentNode] `json:"deployments"`
	}
	vars := map[string]any{}
	if serviceID != "" {
		vars["serviceId"] = serviceID
	}
	if environmentID != "" {
		vars["environmentId"] = environmentID
	}
	if err := c.query(ctx, "deployments", deploymentsQuery, vars, &data); err != nil {
		return nil, fmt.Errorf("failed to fetch deployments: %w", err)
	}
	nodes := data.Deployments.nodes()
	out := make([]deploy.Deployment, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, deploy.Deployment{
			ID:              n.ID,
			Status:          deploy.Status(n.Status),
			CreatedAt:       n.CreatedAt,
			StatusUpdatedAt: deref(n.StatusUpdatedAt),
		})
	}
	return out, nil
}

// DeploymentEvents lists the lifecycle events of a deployment.
func (c *Client) DeploymentEvents(ctx context.Context, deploymentID string) ([]deploy.Event, error) {
	var data struct {
		DeploymentEvents connection[eventNode] `json:"deploymentEvents"`
	}
	vars := map[string]any{"deploymentId": deploymentID}
	if err := c.query(ctx, "deploymentEvents", deploymentEventsQuery, vars, &data); err != nil {
		return nil, fmt.Errorf("failed to fetch deployment events: %w", err)
	}
	nodes := data.DeploymentEvents.nodes()
	out := make([]deploy.Event, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, deploy.Event{
			ID:          n.ID,
			Step:        n.Step,
			CreatedAt:   n.CreatedAt,
			CompletedAt: deref(n.CompletedAt),
		})
	}
	return out, nil
}
