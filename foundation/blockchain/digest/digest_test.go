package digest_test

import (
	"testing"

	"github.com/barrycoin/barrycoin/foundation/blockchain/digest"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestDigest(t *testing.T) {
	type table struct {
		name     string
		strategy string
		payload  string
		exp      string
	}

	tt := []table{
		{
			name:     "sha256",
			strategy: "SHA256",
			payload:  "abc",
			exp:      "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			name:     "keccak256",
			strategy: "keccak256",
			payload:  "",
			exp:      "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
		},
	}

	t.Log("Given the need to digest block payloads.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling the %s strategy.", testID, tst.name)
			{
				f := func(t *testing.T) {
					d, err := digest.Retrieve(tst.strategy)
					if err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to retrieve the digester: %v", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould be able to retrieve the digester.", success, testID)

					got := d.Digest(tst.payload)
					if got != tst.exp {
						t.Logf("\t%s\tTest %d:\tgot: %s", failed, testID, got)
						t.Logf("\t%s\tTest %d:\texp: %s", failed, testID, tst.exp)
						t.Fatalf("\t%s\tTest %d:\tShould get the expected digest.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould get the expected digest.", success, testID)

					if again := d.Digest(tst.payload); again != got {
						t.Fatalf("\t%s\tTest %d:\tShould get the same digest twice.", failed, testID)
					}
					t.Logf("\t%s\tTest %d:\tShould get the same digest twice.", success, testID)
				}

				t.Run(tst.name, f)
			}
		}
	}

	t.Log("Given the need to reject unknown digests.")
	{
		if _, err := digest.Retrieve("md5"); err == nil {
			t.Fatalf("\t%s\tShould fail to retrieve an unknown digester.", failed)
		}
		t.Logf("\t%s\tShould fail to retrieve an unknown digester.", success)
	}
}
