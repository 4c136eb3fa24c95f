package prestashop

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMultipart(t *testing.T) {
	headers, body := encodeMultipart([]File{
		{Field: "image", Name: "photo.png", Content: []byte("PNG")},
		{Field: "image", Name: "notes", Content: []byte("raw")},
	})

	assert.Equal(t, "multipart/form-data; boundary=----------ThIs_Is_tHe_bouNdaRY_$", headers["Content-Type"])

	expected := "------------ThIs_Is_tHe_bouNdaRY_$\r\n" +
		`Content-Disposition: form-data; name="image"; filename="photo.png"` + "\r\n" +
		"Content-Type: image/png\r\n" +
		"\r\n" +
		"PNG\r\n" +
		"------------ThIs_Is_tHe_bouNdaRY_$\r\n" +
		`Content-Disposition: form-data; name="image"; filename="notes"` + "\r\n" +
		"Content-Type: application/octet-stream\r\n" +
		"\r\n" +
		"raw\r\n" +
		"------------ThIs_Is_tHe_bouNdaRY_$--\r\n"
	assert.Equal(t, expected, string(body))
}

func TestClient_CreateBinary(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "photo.png")
		require.NoError(t, os.WriteFile(path, []byte("PNGDATA"), 0o600))

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/images/products/12", r.URL.Path)
			assert.Equal(t, "JSON", r.URL.Query().Get("io_format"))
			assert.False(t, r.URL.Query().Has("display"))

			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), `name="image"; filename="photo.png"`)
			assert.Contains(t, string(body), "Content-Type: image/png\r\n\r\nPNGDATA\r\n")
			w.WriteHeader(http.StatusOK)
		})

		ok, err := client.CreateBinary(context.Background(), "images/products/12", path, "", "")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("base64 content", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.Contains(t, string(body), `name="cover"; filename="cover.jpg"`)
			assert.Contains(t, string(body), "Content-Type: image/jpeg\r\n\r\nbinary\r\n")
			w.WriteHeader(http.StatusOK)
		})

		source := base64.StdEncoding.EncodeToString([]byte("binary"))
		ok, err := client.CreateBinary(context.Background(), "images/products/12", source, "cover", "cover.jpg")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("rejected upload", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			io.WriteString(w, `{"errors":[{"code":66,"message":"Image upload error"}]}`)
		})

		source := base64.StdEncoding.EncodeToString([]byte("binary"))
		ok, err := client.CreateBinary(context.Background(), "images/products/12", source, "", "a.jpg")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("invalid source", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		})

		for _, source := range []string{"not base64!!", "", "  \n"} {
			ok, err := client.CreateBinary(context.Background(), "images/products/12", source, "", "a.jpg")
			assert.False(t, ok)

			var inputErr *InputError
			assert.True(t, errors.As(err, &inputErr), "source %q", source)
		}
	})
}

func TestClient_GetImageProduct(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/images/products/1/2", r.URL.Path)
			w.Header().Set("Content-Type", "image/jpeg")
			w.Write([]byte{0xff, 0xd8, 0xff})
		})

		data, err := client.GetImageProduct(context.Background(), 1, 2)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xff, 0xd8, 0xff}, data)
	})

	t.Run("missing image", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"errors":[{"code":66,"message":"Image not found"}]}`)
		})

		_, err := client.GetImageProduct(context.Background(), 1, 99)

		var svcErr *ServiceError
		require.True(t, errors.As(err, &svcErr))
		assert.True(t, svcErr.IsNotFound())
		assert.Equal(t, "Image not found", svcErr.RemoteMessage)
	})
}
