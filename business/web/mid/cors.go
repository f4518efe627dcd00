package mid

import (
	"context"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/barrycoin/barrycoin/foundation/web"
)

// corsMaxAge is how long a browser can cache a preflight response.
const corsMaxAge = 24 * time.Hour

// Cors lets browsers on the specified origins call the ledger api. The
// origin "*" allows any origin. Preflight requests are answered here and
// never reach the handler.
func Cors(origins ...string) web.Middleware {
	wildcard := slices.Contains(origins, "*")

	m := func(handler web.Handler) web.Handler {
		h := func(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
			origin := r.Header.Get("Origin")

			hdr := w.Header()
			hdr.Add("Vary", "Origin")

			switch {
			case wildcard:
				hdr.Set("Access-Control-Allow-Origin", "*")
			case origin != "" && slices.Contains(origins, origin):
				hdr.Set("Access-Control-Allow-Origin", origin)
			default:
				return handler(ctx, w, r)
			}

			hdr.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			hdr.Set("Access-Control-Allow-Headers", "Content-Type")

			if r.Method != http.MethodOptions {
				return handler(ctx, w, r)
			}

			hdr.Set("Access-Control-Max-Age", strconv.Itoa(int(corsMaxAge.Seconds())))

			return web.Respond(ctx, w, nil, http.StatusNoContent)
		}

		return h
	}

	return m
}
