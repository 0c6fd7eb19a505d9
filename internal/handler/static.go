package handler

import (
	"io/fs"
	"net/http"
	"os"
	"path"

	"go.uber.org/zap"
)

const notFoundPathDetail = "Not Found"

// Static отдаёт файлы фронтенда из dir; для каталогов используется index.html.
// Каталоги без index.html и отсутствующие файлы отвечают 404 {"detail":"Not Found"},
// листинг каталогов не отдаётся. Если каталог не задан или отсутствует, любой путь отвечает 404.
func Static(dir string, logger *zap.Logger) http.Handler {
	if dir == "" {
		return http.HandlerFunc(notFound)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logger.Warn("static directory is not available, serving 404",
			zap.String("dir", dir),
			zap.Error(err),
		)
		return http.HandlerFunc(notFound)
	}

	root := http.Dir(dir)
	files := http.FileServer(root)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !servable(root, path.Clean("/"+r.URL.Path)) {
			notFound(w, r)
			return
		}

		files.ServeHTTP(w, r)
	})
}

// servable сообщает, есть ли по name файл или каталог с index.html.
// Любая ошибка открытия считается отсутствием файла.
func servable(root http.FileSystem, name string) bool {
	info, err := statFile(root, name)
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}

	index, err := statFile(root, path.Join(name, "index.html"))
	return err == nil && !index.IsDir()
}

func statFile(root http.FileSystem, name string) (fs.FileInfo, error) {
	f, err := root.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.Stat()
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeDetail(w, r, http.StatusNotFound, notFoundPathDetail)
}
