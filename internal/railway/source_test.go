package railway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"
)

func environmentFixture(op string, vars map[string]any) (int, string) {
	switch op {
	case "projects":
		return http.StatusOK, `{"data":{"projects":{"edges":[{"node":{"id":"p1","name":"demo"}}]}}}`
	case "environments":
		return http.StatusOK, `{"data":{"environments":{"edges":[{"node":{"id":"e1","name":"production"}}]}}}`
	case "project":
		return http.StatusOK, `{"data":{"project":{"id":"p1","name":"demo","services":{"edges":[
			{"node":{"id":"s1","name":"api","createdAt":"2023-01-01T00:00:00Z","deletedAt":null}},
			{"node":{"id":"s2","name":"worker","createdAt":"2023-01-02T00:00:00Z","deletedAt":"2023-02-01T00:00:00Z"}}
		]}}}}`
	case "environment":
		return http.StatusOK, `{"data":{"environment":{"id":"e1","name":"production","createdAt":"2023-01-01T00:00:00Z","deletedAt":null}}}`
	case "deployments":
		id := vars["serviceId"]
		return http.StatusOK, fmt.Sprintf(`{"data":{"deployments":{"edges":[{"node":{"id":"%s-d1","status":"SUCCESS","createdAt":"2023-01-04T00:00:00Z"}}]}}}`, id)
	case "deploymentEvents":
		return http.StatusOK, `{"data":{"deploymentEvents":{"edges":[
			{"node":{"id":"ev1","step":"BUILD","createdAt":"2023-01-04T00:00:00Z"}},
			{"node":{"id":"ev2","step":"DEPLOY","createdAt":"2023-01-04T00:10:00Z"}}
		]}}}`
	}
	return http.StatusBadRequest, `{"errors":[{"message":"unknown operation"}]}`
}

func TestSourceLoadAutoSelectsSingleProjectAndEnvironment(t *testing.T) {
	fake, client := newFakeRailway(t, environmentFixture)
	fetched := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	src := &Source{Client: client, Now: func() time.Time { return fetched }}

	snap, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.Project.ID != "p1" || snap.Environment.ID != "e1" {
		t.Fatalf("unexpected selection: %s/%s", snap.Project.ID, snap.Environment.ID)
	}
	if !snap.FetchedAt.Equal(fetched) {
		t.Fatalf("expected fetched time %v, got %v", fetched, snap.FetchedAt)
	}
	if len(snap.Project.Services) != 2 {
		t.Fatalf("expected 2 services, got %d", len(snap.Project.Services))
	}
	if !snap.Project.Services[1].Deleted() {
		t.Fatal("expected worker to be marked deleted")
	}
	for _, svc := range snap.Project.Services {
		if len(svc.Deployments) != 1 {
			t.Fatalf("expected one deployment for %s, got %d", svc.Name, len(svc.Deployments))
		}
		r, ok := svc.Deployments[0].Range()
		if !ok || r.Duration() != 10*time.Minute {
			t.Fatalf("expected 10 minute range, got %v %v", r, ok)
		}
	}
	if got := fake.count("deploymentEvents"); got != 2 {
		t.Fatalf("expected 2 event queries, got %d", got)
	}
}

func TestSourceLoadSkipsLookupsForExplicitIDs(t *testing.T) {
	fake, client := newFakeRailway(t, environmentFixture)
	src := &Source{Client: client, ProjectID: "p1", EnvironmentID: "e1"}

	if _, err := src.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if fake.count("projects") != 0 || fake.count("environments") != 0 {
		t.Fatal("expected no list queries with explicit ids")
	}
}

func TestSourceLoadRequiresSelectionWhenAmbiguous(t *testing.T) {
	_, client := newFakeRailway(t, func(op string, vars map[string]any) (int, string) {
		if op == "projects" {
			return http.StatusOK, `{"data":{"projects":{"edges":[{"node":{"id":"p1","name":"api"}},{"node":{"id":"p2","name":"web"}}]}}}`
		}
		return environmentFixture(op, vars)
	})

	_, err := (&Source{Client: client}).Load(context.Background())
	if !errors.Is(err, ErrAmbiguous) {
		t.Fatalf("expected ErrAmbiguous, got %v", err)
	}
	if !strings.Contains(err.Error(), "api (p1)") || !strings.Contains(err.Error(), "web (p2)") {
		t.Fatalf("expected choices in error, got %q", err.Error())
	}
}

func TestSourceLoadPropagatesEventFailure(t *testing.T) {
	_, client := newFakeRailway(t, func(op string, vars map[string]any) (int, string) {
		if op == "deploymentEvents" {
			return http.StatusInternalServerError, `{"errors":[{"message":"boom"}]}`
		}
		return environmentFixture(op, vars)
	})

	_, err := (&Source{Client: client, ProjectID: "p1", EnvironmentID: "e1"}).Load(context.Background())
	if err == nil || !strings.Contains(err.Error(), "failed to fetch deployment events") {
		t.Fatalf("expected deployment events failure, got %v", err)
	}
}
