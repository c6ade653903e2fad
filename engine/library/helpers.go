package library

import "os"

// Touch creates an empty file at the given path if one does not already exist.
func Touch(path string) {
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		f, err := os.Create(path)
		if err != nil {
			LogCLI(err.Error(), 0)
			return
		}
		f.Close()
	}
}

func Bye() string {
	return "engine has shut down, all state has been persisted. Goodbye!"
}
