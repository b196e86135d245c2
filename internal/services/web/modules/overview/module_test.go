package overview

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

func TestModuleIDReturnsOverview(t *testing.T) {
	t.Parallel()

	if got := New().ID(); got != "overview" {
		t.Fatalf("ID() = %q, want %q", got, "overview")
	}
}

func TestMountRequiresStore(t *testing.T) {
	t.Parallel()

	if _, err := New().Mount(module.Dependencies{}); err == nil {
		t.Fatal("Mount() error = nil, want store error")
	}
}

func TestRootRedirectsToOverview(t *testing.T) {
	t.Parallel()

	mount := mountForTest(t)
	req := httptest.NewRequest(http.MethodGet, routepath.Root, nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != routepath.Overview {
		t.Fatalf("Location = %q, want %q", got, routepath.Overview)
	}
}

func TestHealthAnswersOK(t *testing.T) {
	t.Parallel()

	mount := mountForTest(t)
	req := httptest.NewRequest(http.MethodGet, routepath.Health, nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Body.String(); got != "ok" {
		t.Fatalf("body = %q, want %q", got, "ok")
	}
}

func TestOverviewRendersChartsAndHighlights(t *testing.T) {
	t.Parallel()

	mount := mountForTest(t)
	req := httptest.NewRequest(http.MethodGet, routepath.Overview, nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, want := range []string{
		"SOFEA Score Distribution",
		"Top SOFEA",
		"Dr. Sarah Chen",
		"Recent Highlights",
		routepath.Awardee("AIS-Awardee-7"),
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("overview body missing %q", want)
		}
	}
}

func TestOverviewRendersPortugueseCopy(t *testing.T) {
	t.Parallel()

	mount := mountForTest(t)
	req := httptest.NewRequest(http.MethodGet, routepath.Overview, nil)
	req.Header.Set("Accept-Language", "pt-BR")
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if !strings.Contains(rr.Body.String(), "Visão Geral") {
		t.Fatal("overview body missing pt-BR heading")
	}
}

func TestDrilldownRedirectsMappedAwardee(t *testing.T) {
	t.Parallel()

	mount := mountForTest(t)
	req := httptest.NewRequest(http.MethodGet, routepath.Drilldown("score:AIS-Awardee-7"), nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != routepath.Awardee("AIS-Awardee-7") {
		t.Fatalf("Location = %q, want %q", got, routepath.Awardee("AIS-Awardee-7"))
	}
}

func TestDrilldownRedirectsMappedProgram(t *testing.T) {
	t.Parallel()

	mount := mountForTest(t)
	req := httptest.NewRequest(http.MethodGet, routepath.Drilldown("program:EIS"), nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != routepath.EIS {
		t.Fatalf("Location = %q, want %q", got, routepath.EIS)
	}
}

func TestDrilldownSwallowsUnmappedElement(t *testing.T) {
	t.Parallel()

	mount := mountForTest(t)
	req := httptest.NewRequest(http.MethodGet, routepath.Drilldown("score:Nonexistent"), nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", rr.Body.String())
	}
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	t.Parallel()

	mount := mountForTest(t)
	req := httptest.NewRequest(http.MethodGet, "/no-such-page", nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "Not found") {
		t.Fatal("not-found body missing heading")
	}
}

func TestOverviewRejectsNonGet(t *testing.T) {
	t.Parallel()

	mount := mountForTest(t)
	req := httptest.NewRequest(http.MethodPost, routepath.Overview, nil)
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}
