package cmd

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/chain/verify":
			w.Write([]byte(`{"valid":true,"height":3,"tip":"00ab"}`))
		case "/v1/transfers":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"data validation error","fields":{"to":"to is a required field"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`not json`))
		}
	}))
	defer srv.Close()

	nodeURL = srv.URL

	t.Log("Given the need to call a node.")
	{
		t.Logf("\tTest 0:\tWhen decoding a successful response.")
		{
			var v verify
			if err := call(http.MethodGet, "/v1/chain/verify", nil, &v); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to call the node: %v", failed, err)
			}
			if !v.Valid || v.Height != 3 || v.Tip != "00ab" {
				t.Fatalf("\t%s\tTest 0:\tShould decode the response: %+v", failed, v)
			}
			t.Logf("\t%s\tTest 0:\tShould decode the response.", success)
		}

		t.Logf("\tTest 1:\tWhen the node rejects the request.")
		{
			err := call(http.MethodPost, "/v1/transfers", transfer{From: "Barry"}, nil)
			if err == nil {
				t.Fatalf("\t%s\tTest 1:\tShould receive an error.", failed)
			}
			if exp := "data validation error: map[to:to is a required field]"; err.Error() != exp {
				t.Logf("\t%s\tTest 1:\tgot: %s", failed, err)
				t.Logf("\t%s\tTest 1:\texp: %s", failed, exp)
				t.Fatalf("\t%s\tTest 1:\tShould carry the node's error message.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould carry the node's error message.", success)
		}

		t.Logf("\tTest 2:\tWhen the node responds with something unexpected.")
		{
			err := call(http.MethodGet, "/v1/unknown", nil, nil)
			if err == nil || err.Error() != "node responded 404" {
				t.Fatalf("\t%s\tTest 2:\tShould report the status code: %v", failed, err)
			}
			t.Logf("\t%s\tTest 2:\tShould report the status code.", success)
		}
	}
}
