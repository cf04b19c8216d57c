// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader_test

import (
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/famicore/famicore/cartridgeloader"
	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/test"
)

func TestLoaderFile(t *testing.T) {
	data := buildROM(1, 1, 0x01, 0x00)
	filename := filepath.Join(t.TempDir(), "test.nes")
	test.DemandSuccess(t, os.WriteFile(filename, data, 0644))

	cl := cartridgeloader.NewLoader(filename)
	test.ExpectSuccess(t, cl.IsNES())
	test.ExpectEquality(t, cl.ShortName(), "test")
	test.ExpectFailure(t, cl.HasLoaded())

	cart, err := cl.Cartridge()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))
	test.ExpectEquality(t, cart.Name, "test")
	test.ExpectEquality(t, cart.Hash, cl.Hash)

	// the hash is checked if it is set before loading
	cl = cartridgeloader.NewLoader(filename)
	cl.Hash = "0000"
	err = cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoaderError))
	test.ExpectFailure(t, cl.HasLoaded())

	// missing file
	cl = cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.nes"))
	_, err = cl.Cartridge()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoaderError))

	// not an NES file
	cl = cartridgeloader.NewLoader("test.bin")
	test.ExpectFailure(t, cl.IsNES())
	cl.Data = []byte{0x00, 0x01, 0x02}
	_, err = cl.Cartridge()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.NotINES))
}

func TestLoaderHTTP(t *testing.T) {
	data := buildROM(1, 0, 0x00, 0x00)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/roms/test.nes" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL + "/roms/test.nes")
	cart, err := cl.Cartridge()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Name, "test")
	test.ExpectEquality(t, len(cl.Data), len(data))

	cl = cartridgeloader.NewLoader(srv.URL + "/roms/missing.nes")
	err = cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoaderError))
}

func TestLoaderScheme(t *testing.T) {
	cl := cartridgeloader.NewLoader("ftp://example.com/test.nes")
	err := cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.LoaderError))
}
