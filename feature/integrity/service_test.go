package integrity

import (
	"context"
	"errors"
	"testing"

	"travel-admin/core/database"
	"travel-admin/core/storage"
	"travel-admin/core/storage/mocks"
	"travel-admin/feature/catalog/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testStorage = storage.Config{Bucket: "test-bucket", UploadFolder: "destinations", Region: "us-east-1"}

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

func closedChannel() <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo)
	close(ch)
	return ch
}

func TestService_Structure(t *testing.T) {
	t.Run("Folder Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(closedChannel())

		svc := NewService(mockClient, testStorage, nil, zap.NewNop())
		report, err := svc.CheckStructure(context.Background())
		require.NoError(t, err)
		assert.False(t, report.BucketMissing)
		assert.Equal(t, []string{"destinations"}, report.Missing)
	})

	t.Run("Folder Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		ch := make(chan minio.ObjectInfo, 1)
		ch <- minio.ObjectInfo{Key: "destinations/a.jpg"}
		close(ch)
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		svc := NewService(mockClient, testStorage, nil, zap.NewNop())
		report, err := svc.CheckStructure(context.Background())
		require.NoError(t, err)
		assert.True(t, report.OK())
	})

	t.Run("Fix Creates Bucket And Folder", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "test-bucket", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil)
		mockClient.On("PutObject", mock.Anything, "test-bucket", "destinations/", mock.Anything, int64(0), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		svc := NewService(mockClient, testStorage, nil, zap.NewNop())
		report, err := svc.CheckStructure(context.Background())
		require.NoError(t, err)
		require.True(t, report.BucketMissing)

		require.NoError(t, svc.FixStructure(context.Background(), report))
		mockClient.AssertExpectations(t)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, errors.New("connection refused"))

		svc := NewService(mockClient, testStorage, nil, zap.NewNop())
		_, err := svc.CheckStructure(context.Background())
		assert.Error(t, err)
	})
}

func TestService_Schema(t *testing.T) {
	db := setupDB(t)
	svc := NewService(nil, testStorage, db, zap.NewNop())

	report, err := svc.CheckSchema()
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, "ok", report.Tables["itineraries"].Status)
	assert.Contains(t, report.Tables, "blog_categories")

	require.NoError(t, db.Migrator().DropColumn(&models.Place{}, "Description"))
	require.NoError(t, db.Migrator().DropTable(&models.FAQ{}))

	report, err = svc.CheckSchema()
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Equal(t, []string{"description"}, report.Tables["places"].MissingColumns)
	assert.True(t, report.Tables["faqs"].Missing)
}

func TestService_Orphans(t *testing.T) {
	db := setupDB(t)
	svc := NewService(nil, testStorage, db, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Package{ID: "p1", Name: "Live"}).Error)
	require.NoError(t, db.Create(&models.Itinerary{ID: "i1", PackageID: "p1"}).Error)
	require.NoError(t, db.Create(&models.Feature{ID: "f1", ItineraryID: "i1"}).Error)

	report, err := svc.CheckOrphans(ctx, false)
	require.NoError(t, err)
	assert.True(t, report.Clean)

	// rows written around the synchronizer
	require.NoError(t, db.Exec("PRAGMA foreign_keys = OFF").Error)
	require.NoError(t, db.Create(&models.Itinerary{ID: "i2", PackageID: "gone"}).Error)
	require.NoError(t, db.Create(&models.Feature{ID: "f2", ItineraryID: "i2"}).Error)
	require.NoError(t, db.Create(&models.BlogCategory{BlogID: "gone", CategoryID: 42}).Error)

	report, err = svc.CheckOrphans(ctx, false)
	require.NoError(t, err)
	assert.False(t, report.Clean)
	assert.EqualValues(t, 1, report.Counts["itineraries.package_id"])
	assert.EqualValues(t, 0, report.Counts["features.itinerary_id"])
	assert.EqualValues(t, 1, report.Counts["blog_categories.blog_id"])
	assert.EqualValues(t, 1, report.Counts["blog_categories.category_id"])

	report, err = svc.CheckOrphans(ctx, true)
	require.NoError(t, err)
	assert.True(t, report.Fixed)
	assert.EqualValues(t, 1, report.Counts["features.itinerary_id"])

	report, err = svc.CheckOrphans(ctx, false)
	require.NoError(t, err)
	assert.True(t, report.Clean)

	var n int64
	require.NoError(t, db.Model(&models.Feature{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestService_RunAll(t *testing.T) {
	db := setupDB(t)
	mockClient := new(mocks.Client)
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(closedChannel())

	report := NewService(mockClient, testStorage, db, zap.NewNop()).RunAll(context.Background())
	require.NotNil(t, report.Structure)
	require.NotNil(t, report.Schema)
	require.NotNil(t, report.Orphans)
	assert.True(t, report.Schema.Matched)
	assert.True(t, report.Orphans.Clean)
	assert.Equal(t, []string{"destinations"}, report.Structure.Missing)

	report = NewService(nil, testStorage, nil, zap.NewNop()).RunAll(context.Background())
	assert.NotEmpty(t, report.StructureError)
	assert.NotEmpty(t, report.SchemaError)
	assert.NotEmpty(t, report.OrphansError)
	assert.NotEmpty(t, report.MediaError)
}

func listing(keys ...string) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(keys))
	for _, k := range keys {
		ch <- minio.ObjectInfo{Key: k}
	}
	close(ch)
	return ch
}

func TestService_Media(t *testing.T) {
	db := setupDB(t)
	cfg := testStorage
	cfg.Endpoint = "localhost:9000"
	base := "http://localhost:9000/test-bucket/"

	require.NoError(t, db.Create(&models.Package{ID: "p1", Name: "Nile", Image: base + "destinations/a.png"}).Error)
	require.NoError(t, db.Create(&models.Destination{ID: "d1", Name: "Egypt", Image: base + "destinations/a.png?w=400"}).Error)
	require.NoError(t, db.Create(&models.Blog{ID: "b1", Title: "B", Thumbnail: "https://elsewhere.example/x.png"}).Error)
	require.NoError(t, db.Create(&models.BlogImage{ID: "im1", BlogID: "b1", URL: base + "destinations/missing.png"}).Error)

	mockClient := new(mocks.Client)
	objects := []string{"destinations/", "destinations/a.png", "destinations/stale.png"}
	mockClient.On("ListObjects", mock.Anything, "test-bucket", minio.ListObjectsOptions{Prefix: "destinations/", Recursive: true}).
		Return(listing(objects...)).Once()
	mockClient.On("ListObjects", mock.Anything, "test-bucket", minio.ListObjectsOptions{Prefix: "destinations/", Recursive: true}).
		Return(listing(objects...)).Once()
	mockClient.On("RemoveObject", mock.Anything, "test-bucket", "destinations/stale.png", minio.RemoveObjectOptions{}).Return(nil)

	svc := NewService(mockClient, cfg, db, zap.NewNop())
	ctx := context.Background()

	plan, executed, err := svc.CheckMedia(ctx, false)
	require.NoError(t, err)
	assert.Zero(t, executed)
	assert.Equal(t, 3, plan.Summary.TotalItems)
	assert.Equal(t, 1, plan.Summary.MissingStorage)
	assert.Equal(t, 1, plan.Summary.Unreferenced)
	assert.Empty(t, plan.Actions)

	result, err := svc.MediaStatus(ctx, "destinations/a.png")
	require.NoError(t, err)
	assert.True(t, result.Stored)
	assert.Equal(t, []string{"destinations:d1", "packages:p1"}, result.Owners)

	plan, executed, err = svc.CheckMedia(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 1, executed)
	require.Len(t, plan.Actions, 1)
	assert.Equal(t, "destinations/stale.png", plan.Actions[0].Key)

	mockClient.AssertNumberOfCalls(t, "ListObjects", 2)
	mockClient.AssertExpectations(t)
}
