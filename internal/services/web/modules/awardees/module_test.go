package awardees

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sofealabs/impactboard/internal/impact"
	module "github.com/sofealabs/impactboard/internal/services/web/module"
	"github.com/sofealabs/impactboard/internal/services/web/routepath"
)

func mountForTest(t *testing.T) module.Mount {
	t.Helper()

	mount, err := New().Mount(module.Dependencies{Store: impact.Fixtures()})
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount
}

func TestModuleIDReturnsAwardees(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "awardees" {
		t.Fatalf("ID() = %q, want %q", got, "awardees")
	}
}

func TestExplorerListsEveryAwardee(t *testing.T) {
	t.Parallel()

	store := impact.Fixtures()
	mount := mountForTest(t)
	req := httptest.NewRequest(http.MethodGet, routepath.Awardees, nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, awardee := range store.AllAwardees() {
		if !strings.Contains(body, awardee.Name) {
			t.Fatalf("explorer body missing %q", awardee.Name)
		}
		if !strings.Contains(body, routepath.Awardee(awardee.ID)) {
			t.Fatalf("explorer body missing link for %q", awardee.ID)
		}
	}
}

func TestDetailRendersDrilldownTarget(t *testing.T) {
	t.Parallel()

	mount := mountForTest(t)
	req := httptest.NewRequest(http.MethodGet, routepath.Awardee("AIS-Awardee-7"), nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{
		"Dr. Miguel Alvarez",
		"Bucket Breakdown",
		"Career Timeline",
		"Publications",
		"Nature",
		"← Back to Overview",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("detail body missing %q", want)
		}
	}
}

func TestDetailUnknownIDRendersNotFound(t *testing.T) {
	t.Parallel()

	mount := mountForTest(t)
	req := httptest.NewRequest(http.MethodGet, routepath.Awardee("ZZZ-Awardee-99"), nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "Not found") {
		t.Fatal("not-found body missing heading")
	}
}

func TestDetailSubpathRendersNotFound(t *testing.T) {
	t.Parallel()

	mount := mountForTest(t)
	req := httptest.NewRequest(http.MethodGet, routepath.Awardee("AIS-Awardee-7")+"/extra", nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestExplorerRejectsNonGet(t *testing.T) {
	t.Parallel()

	mount := mountForTest(t)
	req := httptest.NewRequest(http.MethodPut, routepath.Awardees, nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}
