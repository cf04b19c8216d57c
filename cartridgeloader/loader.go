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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/famicore/famicore/curated"
	"github.com/famicore/famicore/hardware/memory/cartridge"
	"github.com/famicore/famicore/logger"
)

// LoaderError is the error pattern used for all problems encountered while
// loading data. Parse errors have their own patterns, see ines.go.
const LoaderError = "cartridgeloader: %v"

// FileExtensions is the list of file extensions that are recognised by the
// cartridgeloader package.
var FileExtensions = [...]string{".NES"}

// Loader is used to specify the cartridge to attach to the console.
type Loader struct {
	// filename of cartridge to load. can be a http or https URL
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequence calls to Load() will return a copy
	// of this data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// IsNES returns true if the filename has a recognised file extension.
// Alphabetic characters in file extensions can be in upper or lower case or a
// mixture of both.
func (cl Loader) IsNES() bool {
	ext := strings.ToUpper(path.Ext(cl.Filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := path.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, path.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoaderError, fmt.Sprintf("unexpected HTTP status (%s)", resp.Status))
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	case "file", "":
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	default:
		return curated.Errorf(LoaderError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	// check for hash consistency
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf(LoaderError, "unexpected hash value")
	}

	cl.Hash = hash

	return nil
}

// Cartridge loads the data, if it has not been loaded already, and parses it
// as an iNES file.
func (cl *Loader) Cartridge() (*cartridge.Cartridge, error) {
	if err := cl.Load(); err != nil {
		return nil, err
	}

	hdr, err := ParseHeader(cl.Data)
	if err != nil {
		return nil, err
	}

	cart, err := hdr.Cartridge(cl.Data)
	if err != nil {
		return nil, err
	}
	cart.Name = cl.ShortName()
	cart.Hash = cl.Hash

	logger.Logf(logger.Allow, "cartridgeloader", "%s: %s", cl.ShortName(), hdr)

	return cart, nil
}
