package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "topicadm.yml")
	data := `
clusters:
  - name: local
    brokers: ["localhost:9092"]
  - name: staging
    brokers: ["k1:9092", "k2:9092"]
    sasl:
      mechanism: SCRAM-SHA-256
      username_env: KAFKA_USER
      password_env: KAFKA_PASS
    tls:
      enabled: true
sort: Enqueued
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := ReadConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.Clusters, 2)
	require.Equal(t, "Enqueued", cfg.Sort)
	require.Equal(t, []string{"localhost:9092"}, cfg.Clusters[0].Brokers)
	require.Equal(t, "SCRAM-SHA-256", cfg.Clusters[1].SASL.Mechanism)
	require.True(t, cfg.Clusters[1].TLS.Enabled)
}

func TestReadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	require.Error(t, err)
}

func TestWriteConfigRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "topicadm.yml")
	in := FileConfig{
		Clusters: []ClusterConfig{{Name: "local", Brokers: []string{"localhost:9092"}}},
		Sort:     "Dequeued",
	}
	require.NoError(t, WriteConfig(path, in))

	out, err := ReadConfig(path)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestFileConfigCluster(t *testing.T) {
	t.Parallel()

	cfg := FileConfig{Clusters: []ClusterConfig{
		{Name: "local"},
		{Name: "staging"},
	}}

	c, ok := cfg.Cluster("")
	require.True(t, ok)
	require.Equal(t, "local", c.Name)

	c, ok = cfg.Cluster("staging")
	require.True(t, ok)
	require.Equal(t, "staging", c.Name)

	_, ok = cfg.Cluster("prod")
	require.False(t, ok)

	_, ok = FileConfig{}.Cluster("")
	require.False(t, ok)
}

func TestGetAuthType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  ClusterConfig
		want string
	}{
		{"plaintext", ClusterConfig{}, "PLAINTEXT"},
		{"tls", ClusterConfig{TLS: &TLSConfig{Enabled: true}}, "TLS"},
		{"mtls", ClusterConfig{TLS: &TLSConfig{Enabled: true, CertFile: "c.pem", KeyFile: "k.pem"}}, "mTLS"},
		{"sasl", ClusterConfig{SASL: &SASLConfig{Mechanism: "PLAIN"}}, "SASL/PLAIN"},
		{"sasl_tls", ClusterConfig{SASL: &SASLConfig{Mechanism: "PLAIN"}, TLS: &TLSConfig{Enabled: true}}, "SASL/PLAIN + TLS"},
		{"aws", ClusterConfig{AWS: &AWSConfig{IAM: true}}, "AWS IAM"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.cfg.GetAuthType())
		})
	}
}
