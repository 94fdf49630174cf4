package cmd

import (
	"bytes"
	"testing"

	"github.com/kerbaras/tirinha/pkg/services"
	"github.com/stretchr/testify/assert"
)

func TestTrackDownloads_NothingDownloaded(t *testing.T) {
	progress := make(chan services.DownloadProgress)
	close(progress)

	var out bytes.Buffer
	trackDownloads(progress, &out)()

	assert.NotContains(t, out.String(), "0/0")
}
