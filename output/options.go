package output

type Options struct {
	EnableColor bool
	JSON        bool
}
