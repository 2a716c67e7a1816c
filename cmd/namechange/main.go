// Command namechange renames MP3 files to a consistent
// "Artist - NN - Title.mp3" pattern and tags them from their names.
package main

import (
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if err := Execute(); err != nil {
		logrus.Fatal(err)
	}
}
