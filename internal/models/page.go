package models

// Window — окно выборки для постраничных запросов к хранилищу.
type Window struct {
	Limit  int
	Offset int
}
