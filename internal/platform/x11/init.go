//go:build unix

package x11

import "github.com/kweiss/xwinctl/internal/platform"

func init() {
	platform.NewProviderFunc = func(display string) (*platform.Provider, error) {
		conn, err := NewConn(display)
		if err != nil {
			return nil, err
		}
		return &platform.Provider{
			Lister:        conn,
			Manager:       conn,
			Screenshotter: conn,
			Closer:        conn.Close,
		}, nil
	}
}
