package version

type Version struct {
	Version string
	Commit  string
}
