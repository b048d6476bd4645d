package drive

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// newTestClient returns a client that talks to an httptest server and records
// the query parameters of every request.
func newTestClient(t *testing.T, body string) (*Client, *[]url.Values) {
	t.Helper()

	var requests []url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests = append(requests, r.URL.Query())
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	client, err := NewClientWithOptions(context.Background(),
		option.WithHTTPClient(srv.Client()),
		option.WithEndpoint(srv.URL+"/"),
	)
	if err != nil {
		t.Fatalf("NewClientWithOptions() error = %v", err)
	}

	return client, &requests
}

func TestConvertToFileInfo(t *testing.T) {
	modifiedTime := "2023-01-02T15:30:00Z"

	driveFile := &drive.File{
		Id:           "file123",
		Name:         "test.pdf",
		MimeType:     "application/pdf",
		Size:         1024,
		ModifiedTime: modifiedTime,
		WebViewLink:  "https://drive.google.com/file/d/file123/view",
		Parents:      []string{"parent1", "parent2"},
	}

	fileInfo := convertToFileInfo(driveFile)

	if fileInfo.ID != "file123" {
		t.Errorf("Expected ID file123, got %s", fileInfo.ID)
	}
	if fileInfo.Name != "test.pdf" {
		t.Errorf("Expected Name test.pdf, got %s", fileInfo.Name)
	}
	if fileInfo.MimeType != "application/pdf" {
		t.Errorf("Expected MimeType application/pdf, got %s", fileInfo.MimeType)
	}
	if fileInfo.Size != 1024 {
		t.Errorf("Expected Size 1024, got %d", fileInfo.Size)
	}
	if fileInfo.WebViewLink != "https://drive.google.com/file/d/file123/view" {
		t.Errorf("Expected WebViewLink, got %s", fileInfo.WebViewLink)
	}
	if len(fileInfo.Parents) != 2 || fileInfo.Parents[0] != "parent1" || fileInfo.Parents[1] != "parent2" {
		t.Errorf("Expected parents [parent1, parent2], got %v", fileInfo.Parents)
	}

	expectedModified, _ := time.Parse(time.RFC3339, modifiedTime)
	if !fileInfo.ModifiedTime.Equal(expectedModified) {
		t.Errorf("Expected ModifiedTime %v, got %v", expectedModified, fileInfo.ModifiedTime)
	}
}

func TestConvertToFileInfo_MinimalData(t *testing.T) {
	fileInfo := convertToFileInfo(&drive.File{
		Id:           "file456",
		Name:         "minimal.txt",
		MimeType:     "text/plain",
		ModifiedTime: "not-a-timestamp",
	})

	if fileInfo.ID != "file456" {
		t.Errorf("Expected ID file456, got %s", fileInfo.ID)
	}
	if fileInfo.Size != 0 {
		t.Errorf("Expected Size 0, got %d", fileInfo.Size)
	}
	if !fileInfo.ModifiedTime.IsZero() {
		t.Errorf("Expected zero ModifiedTime for unparsable input, got %v", fileInfo.ModifiedTime)
	}
	if fileInfo.IsFolder() {
		t.Error("Expected text file not to be a folder")
	}
}

func TestFolderMimeType(t *testing.T) {
	expectedMimeType := "application/vnd.google-apps.folder"
	if FolderMimeType != expectedMimeType {
		t.Errorf("Expected FolderMimeType %s, got %s", expectedMimeType, FolderMimeType)
	}
	if !(&FileInfo{MimeType: FolderMimeType}).IsFolder() {
		t.Error("Expected folder MIME type to report IsFolder")
	}
}

func TestListFiles_SharedDriveParameters(t *testing.T) {
	client, requests := newTestClient(t, `{
		"files": [{"id": "f1", "name": "Budget", "mimeType": "text/csv", "size": "12"}],
		"nextPageToken": "next-1"
	}`)

	result, err := client.ListFiles(context.Background(), &ListOptions{
		Query:     "trashed = false and 'drive-1' in parents",
		PageSize:  25,
		PageToken: "tok",
		OrderBy:   "modifiedTime desc",
		DriveID:   "drive-1",
	})
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}

	if len(result.Files) != 1 || result.Files[0].ID != "f1" || result.Files[0].Size != 12 {
		t.Errorf("unexpected files: %+v", result.Files)
	}
	if result.NextPageToken != "next-1" {
		t.Errorf("Expected next page token next-1, got %q", result.NextPageToken)
	}

	if len(*requests) != 1 {
		t.Fatalf("Expected 1 request, got %d", len(*requests))
	}
	q := (*requests)[0]
	expected := map[string]string{
		"q":                         "trashed = false and 'drive-1' in parents",
		"pageSize":                  "25",
		"pageToken":                 "tok",
		"orderBy":                   "modifiedTime desc",
		"corpora":                   "drive",
		"driveId":                   "drive-1",
		"supportsAllDrives":         "true",
		"includeItemsFromAllDrives": "true",
	}
	for key, want := range expected {
		if got := q.Get(key); got != want {
			t.Errorf("param %s = %q, want %q", key, got, want)
		}
	}
}

func TestListFiles_WithoutDriveOmitsCorpora(t *testing.T) {
	client, requests := newTestClient(t, `{"files": []}`)

	result, err := client.ListFiles(context.Background(), &ListOptions{Query: "trashed = false"})
	if err != nil {
		t.Fatalf("ListFiles() error = %v", err)
	}
	if len(result.Files) != 0 {
		t.Errorf("Expected no files, got %d", len(result.Files))
	}

	q := (*requests)[0]
	if q.Get("corpora") != "" || q.Get("driveId") != "" {
		t.Errorf("Expected no corpora/driveId, got corpora=%q driveId=%q", q.Get("corpora"), q.Get("driveId"))
	}
	if q.Get("supportsAllDrives") != "true" || q.Get("includeItemsFromAllDrives") != "true" {
		t.Error("Expected all-drives flags to always be set")
	}
}

func TestFindSharedDrives_EscapesName(t *testing.T) {
	client, requests := newTestClient(t, `{"drives": [{"id": "d1", "name": "Bob's Team"}]}`)

	drives, err := client.FindSharedDrives(context.Background(), "Bob's Team")
	if err != nil {
		t.Fatalf("FindSharedDrives() error = %v", err)
	}
	if len(drives) != 1 || drives[0].ID != "d1" {
		t.Errorf("unexpected drives: %+v", drives)
	}

	q := (*requests)[0]
	if got, want := q.Get("q"), `name = 'Bob\'s Team'`; got != want {
		t.Errorf("q = %q, want %q", got, want)
	}
	if got := q.Get("pageSize"); got != "100" {
		t.Errorf("pageSize = %q, want 100", got)
	}
}

func TestCreateFile_Folder(t *testing.T) {
	var gotBody map[string]interface{}
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id": "folder-1", "name": "Reports", "mimeType": "application/vnd.google-apps.folder", "parents": ["drive-1"]}`)
	}))
	defer srv.Close()

	client, err := NewClientWithOptions(context.Background(),
		option.WithHTTPClient(srv.Client()),
		option.WithEndpoint(srv.URL+"/"),
	)
	if err != nil {
		t.Fatalf("NewClientWithOptions() error = %v", err)
	}

	file, err := client.CreateFile(context.Background(), &CreateOptions{
		Name:     "Reports",
		MimeType: FolderMimeType,
		Parents:  []string{"drive-1"},
		DriveID:  "drive-1",
	}, nil)
	if err != nil {
		t.Fatalf("CreateFile() error = %v", err)
	}

	if file.ID != "folder-1" || !file.IsFolder() {
		t.Errorf("unexpected file: %+v", file)
	}
	if gotBody["name"] != "Reports" || gotBody["mimeType"] != FolderMimeType {
		t.Errorf("unexpected request body: %v", gotBody)
	}
	if gotQuery.Get("supportsAllDrives") != "true" {
		t.Error("Expected supportsAllDrives=true for shared drive create")
	}
}

func TestCreateFile_RequiresName(t *testing.T) {
	client, requests := newTestClient(t, `{}`)

	if _, err := client.CreateFile(context.Background(), &CreateOptions{}, strings.NewReader("x")); err == nil {
		t.Error("Expected error for missing name")
	}
	if len(*requests) != 0 {
		t.Errorf("Expected no requests, got %d", len(*requests))
	}
}

func TestClient_RequiresFileID(t *testing.T) {
	client, _ := newTestClient(t, `{}`)
	ctx := context.Background()

	if _, err := client.GetFile(ctx, ""); err == nil {
		t.Error("GetFile: expected error for empty fileID")
	}
	if _, err := client.DownloadFile(ctx, ""); err == nil {
		t.Error("DownloadFile: expected error for empty fileID")
	}
	if _, err := client.ExportFile(ctx, "", "text/plain"); err == nil {
		t.Error("ExportFile: expected error for empty fileID")
	}
}
