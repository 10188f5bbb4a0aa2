package detectors

// auditGlobs are the file names an ignore file is expected to cover.
var auditGlobs = []string{
	".env",
	"*.pem",
	"*.key",
	"*.p12",
	"*.pfx",
	"credentials.json",
	"*.jks",
	"*.keystore",
	".htpasswd",
	".netrc",
	".pgpass",
	"id_rsa",
	"id_ed25519",
	"*.secret",
	"token.json",
	"secrets.yml",
	"secrets.yaml",
	".boto",
	".s3cfg",
	"kubeconfig",
}

// AuditGlobs returns the ignore-audit globs in declaration order.
func AuditGlobs() []string {
	return append([]string(nil), auditGlobs...)
}
