package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/bf/logs"
	"github.com/reusee/bf/nets"
)

var ErrBadStatus = errors.New("bad response status")

// maxRemoteSize caps programs fetched over the network.
const maxRemoteSize = 64 << 20

// Load reads program text from a file path, "-" for standard input, or an
// http(s) URL.
type Load func(ctx context.Context, location string) ([]byte, error)

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

func (Module) Load(
	client nets.HTTPClient,
	stdin Stdin,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, location string) (ret []byte, err error) {
		defer func() {
			if err == nil {
				logger.DebugContext(ctx, "program loaded",
					"location", location,
					"bytes", len(ret),
				)
			}
		}()

		switch {

		case location == "-":
			ret, err = io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("read program from stdin: %w", err)
			}
			return ret, nil

		case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
			return fetch(ctx, client, location)

		}

		ret, err = os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("read program: %w", err)
		}
		return ret, nil
	}
}

func fetch(ctx context.Context, client nets.HTTPClient, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch program: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch program: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch program %s: %w: %s", url, ErrBadStatus, resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize+1))
	if err != nil {
		return nil, fmt.Errorf("fetch program %s: %w", url, err)
	}
	if len(body) > maxRemoteSize {
		return nil, fmt.Errorf("fetch program %s: larger than %d bytes", url, maxRemoteSize)
	}
	return body, nil
}
