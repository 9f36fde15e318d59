package helper

import (
	"errors"
	"net/url"
	"strconv"
	"time"
	"vietqr_checkout/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
)

const PaymentImageFolder = "payments"

var ErrCloudinaryNotConfigured = errors.New("cloudinary is not configured")

type UploadSignature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	Folder    string `json:"folder"`
	PublicId  string `json:"publicId,omitempty"`
	ApiKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
}

func InitCloudinary() (*cloudinary.Cloudinary, error) {
	cloudName := config.Config("CLOUDINARY_CLOUD_NAME")
	if cloudName == "" {
		return nil, ErrCloudinaryNotConfigured
	}
	return cloudinary.NewFromParams(
		cloudName,
		config.Config("CLOUDINARY_API_KEY"),
		config.Config("CLOUDINARY_API_SECRET"),
	)
}

// SignPaymentImageUpload ký tham số upload icon cho cấu hình thanh toán (client upload trực tiếp)
func SignPaymentImageUpload(cld *cloudinary.Cloudinary, publicId string, now time.Time) (UploadSignature, error) {
	if cld == nil {
		return UploadSignature{}, ErrCloudinaryNotConfigured
	}
	timestamp := now.Unix()

	params := url.Values{}
	params.Set("folder", PaymentImageFolder)
	if publicId != "" {
		params.Set("public_id", publicId)
	}
	params.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(params, cld.Config.Cloud.APISecret)
	if err != nil {
		return UploadSignature{}, err
	}

	return UploadSignature{
		Signature: signature,
		Timestamp: timestamp,
		Folder:    PaymentImageFolder,
		PublicId:  publicId,
		ApiKey:    cld.Config.Cloud.APIKey,
		CloudName: cld.Config.Cloud.CloudName,
	}, nil
}
