package core

type ErrorNotFound struct {
	resource string
}

func (e ErrorNotFound) Error() string {
	if e.resource == "" {
		return "Not Found"
	}
	return e.resource + " not found"
}

// Is matches any ErrorNotFound regardless of the resource
func (e ErrorNotFound) Is(target error) bool {
	_, ok := target.(ErrorNotFound)
	return ok
}

func NewErrorNotFound(resource string) ErrorNotFound {
	return ErrorNotFound{resource: resource}
}

type ErrorAlreadyExists struct {
	resource string
}

func (e ErrorAlreadyExists) Error() string {
	if e.resource == "" {
		return "Already Exists"
	}
	return e.resource + " already exists"
}

func (e ErrorAlreadyExists) Is(target error) bool {
	_, ok := target.(ErrorAlreadyExists)
	return ok
}

func NewErrorAlreadyExists(resource string) ErrorAlreadyExists {
	return ErrorAlreadyExists{resource: resource}
}
