package logger

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	original := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = original })

	tests := []struct {
		name      string
		logger    Logger
		wantInfo  bool
		wantDebug bool
	}{
		{"quiet", Logger{}, false, false},
		{"verbose", Logger{Verbose: true}, true, false},
		{"debug implies info", Logger{Debug: true}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			l := tt.logger
			l.Out, l.Err = &out, &errOut

			l.Infof("scanning %s", "site")
			l.Debugf("found %d pages", 2)
			l.Warnf("slow")

			assert.Equal(t, tt.wantInfo, bytes.Contains(out.Bytes(), []byte("[info] scanning site")))
			assert.Equal(t, tt.wantDebug, bytes.Contains(out.Bytes(), []byte("[debug] found 2 pages")))
			assert.Contains(t, errOut.String(), "[warn] slow")
		})
	}
}

func TestErrorfAndReturn(t *testing.T) {
	var errOut bytes.Buffer
	l := Logger{Err: &errOut}

	err := l.ErrorfAndReturn("failed to load %s", "settings")

	assert.EqualError(t, err, "failed to load settings")
	assert.Contains(t, errOut.String(), "failed to load settings")
}
