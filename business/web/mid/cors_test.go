package mid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/barrycoin/barrycoin/business/web/mid"
	"github.com/barrycoin/barrycoin/foundation/web"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_Cors(t *testing.T) {
	type table struct {
		name    string
		origins []string
		method  string
		origin  string
		allow   string
		status  int
		reached bool
	}

	tt := []table{
		{name: "wildcard", origins: []string{"*"}, method: http.MethodGet, origin: "http://barry.io", allow: "*", status: http.StatusOK, reached: true},
		{name: "listed", origins: []string{"http://barry.io"}, method: http.MethodPost, origin: "http://barry.io", allow: "http://barry.io", status: http.StatusOK, reached: true},
		{name: "unlisted", origins: []string{"http://barry.io"}, method: http.MethodGet, origin: "http://frank.io", allow: "", status: http.StatusOK, reached: true},
		{name: "preflight", origins: []string{"*"}, method: http.MethodOptions, origin: "http://barry.io", allow: "*", status: http.StatusNoContent, reached: false},
	}

	t.Log("Given the need to answer cross origin requests.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling a %s request.", testID, tst.name)
			{
				f := func(t *testing.T) {
					var reached bool
					h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
						reached = true
						return web.Respond(ctx, w, nil, http.StatusOK)
					}

					app := web.NewApp(make(chan os.Signal, 1), mid.Cors(tst.origins...))
					app.Handle(tst.method, "v1", "/blocks", h)

					r := httptest.NewRequest(tst.method, "/v1/blocks", nil)
					r.Header.Set("Origin", tst.origin)
					w := httptest.NewRecorder()
					app.ServeHTTP(w, r)

					if got := w.Header().Get("Access-Control-Allow-Origin"); got != tst.allow {
						t.Logf("\t%s\tTest %d:\tgot: %q", failed, testID, got)
						t.Logf("\t%s\tTest %d:\texp: %q", failed, testID, tst.allow)
						t.Fatalf("\t%s\tTest %d:\tShould set the allowed origin.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould set the allowed origin.", success, testID)

					if w.Code != tst.status {
						t.Fatalf("\t%s\tTest %d:\tShould respond with %d: got %d", failed, testID, tst.status, w.Code)
					}
					t.Logf("\t%s\tTest %d:\tShould respond with %d.", success, testID, tst.status)

					if reached != tst.reached {
						t.Fatalf("\t%s\tTest %d:\tShould reach the handler only for non preflight requests.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould reach the handler only for non preflight requests.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}
}
