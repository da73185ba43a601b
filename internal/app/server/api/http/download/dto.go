package download

type downloadInput struct {
	Format string `query:"format" example:"csv" doc:"Export format, csv or xlsx; anything else serves csv"`
}

type downloadOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}
