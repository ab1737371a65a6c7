package controllers

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/mlanda98/social-media/models"
	"github.com/mlanda98/social-media/utils/fileformat"
	httpctx "github.com/mlanda98/social-media/utils/httpctx"

	aws2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
)

const avatarKeyPrefix = "UserProfilePics/"

var (
	errAvatarTooLarge = errors.New("avatar file too large")
	errAvatarNotImage = errors.New("avatar file is not an image")
)

// readUploadedImage pulls the whole multipart file into memory and
// verifies it is an image small enough to store. A short read is an
// error; the buffer must hold exactly the declared size.
func readUploadedImage(file *multipart.FileHeader) ([]byte, string, error) {
	if file.Size > 512_000 {
		return nil, "", errAvatarTooLarge
	}

	f, err := file.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	buf := make([]byte, file.Size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, "", err
	}

	fileType := http.DetectContentType(buf)
	if !strings.HasPrefix(fileType, "image/") {
		return nil, "", errAvatarNotImage
	}
	return buf, fileType, nil
}

// UpdateAvatar godoc
// @Summary      Upload an avatar
// @Description  Upload an avatar image for the authenticated user (multipart, <500KB)
// @Tags         profiles
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      200   {object}  UserDTO
// @Failure      400   {object}  map[string]string
// @Router       /profile/avatar [put]
// @Security     BearerAuth
func (server *Server) UpdateAvatar(c *gin.Context) {
	userID, ok := httpctx.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status": http.StatusUnauthorized,
			"error":  "Unauthorized",
		})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "error": "Invalid file"})
		return
	}

	buf, fileType, err := readUploadedImage(file)
	if err != nil {
		msg := "Could not read file"
		switch {
		case errors.Is(err, errAvatarTooLarge):
			msg = "File too large (<500KB)"
		case errors.Is(err, errAvatarNotImage):
			msg = "Not an image"
		}
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "error": msg})
		return
	}

	key := avatarKeyPrefix + fileformat.UniqueFileName(file.Filename)

	rawBucket := os.Getenv("S3_BUCKET")
	bucketName := strings.SplitN(rawBucket, "/", 2)[0]
	if bucketName == "" {
		log.Printf("S3_BUCKET env var is empty or invalid: '%s'", rawBucket)
		c.JSON(http.StatusInternalServerError, gin.H{"status": http.StatusInternalServerError, "error": "Server configuration error"})
		return
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-2"
	}

	// Static credentials when provided, default chain otherwise.
	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if accessKey := os.Getenv("AWS_ACCESS_KEY_ID"); accessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, os.Getenv("AWS_SECRET_ACCESS_KEY"), ""),
		))
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		log.Printf("AWS config load error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": http.StatusInternalServerError, "error": "AWS configuration error"})
		return
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	_, err = s3Client.PutObject(c.Request.Context(), &s3.PutObjectInput{
		Bucket:        aws2.String(bucketName),
		Key:           aws2.String(key),
		Body:          bytes.NewReader(buf),
		ContentLength: aws2.Int64(int64(len(buf))),
		ContentType:   aws2.String(fileType),
	})
	if err != nil {
		log.Printf("S3 upload failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": http.StatusInternalServerError, "error": "Failed to upload image"})
		return
	}

	fullURL := "https://" + bucketName + ".s3." + region + ".amazonaws.com/" + key

	user := models.User{AvatarPath: fullURL}
	updatedUser, err := user.UpdateAUserAvatar(server.DB, userID)
	if err != nil {
		log.Printf("DB update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": http.StatusInternalServerError, "error": "Cannot save image, please try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   http.StatusOK,
		"response": userToResponse(updatedUser),
	})
}
