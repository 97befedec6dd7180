package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/chefacademy/culinary_platform/configs"
	"github.com/chefacademy/culinary_platform/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GenerateCompletionCertificate renders a PDF certificate for a completed
// enrollment, uploads it, and records it. Runs in the background; failures
// are logged, never surfaced to the request.
func GenerateCompletionCertificate(db *gorm.DB, enrollmentID uuid.UUID) {
	var enrollment models.Enrollment
	if err := db.Preload("Student").Preload("Course.Chef").First(&enrollment, "id = ?", enrollmentID).Error; err != nil {
		log.Printf("🔥 Certificate: enrollment %s not found: %v", enrollmentID, err)
		return
	}

	var existingCert models.Certificate
	if err := db.Where("student_id = ? AND course_id = ?", enrollment.StudentID, enrollment.CourseID).
		First(&existingCert).Error; err == nil {
		return
	}

	htmlData, err := generateCertificateHTML(enrollment.Student.Username, enrollment.Course.Chef.Username, enrollment.Course.Title)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate PDF: %v", err)
		return
	}

	uploadURL, err := uploadToCloudinary(pdfBytes, enrollment.StudentID.String())
	if err != nil {
		log.Printf("🔥 Failed to upload certificate to Cloudinary: %v", err)
		return
	}

	newCertificate := models.Certificate{
		StudentID:      enrollment.StudentID,
		CourseID:       enrollment.CourseID,
		CourseTitle:    enrollment.Course.Title,
		CompletionDate: time.Now(),
		CertificateURL: uploadURL,
	}

	if err := db.Create(&newCertificate).Error; err != nil {
		log.Printf("🔥 Failed to create certificate record for student %s: %v", enrollment.StudentID, err)
	} else {
		log.Printf("✅ Generated and uploaded certificate '%s' for student %s.", enrollment.Course.Title, enrollment.StudentID)
	}
}

func generateCertificateHTML(studentName, chefName, courseTitle string) (string, error) {
	tmpl, err := template.ParseFiles("templates/certificate.html")
	if err != nil {
		return "", err
	}

	data := struct {
		StudentName    string
		ChefName       string
		CourseTitle    string
		CompletionDate string
	}{
		StudentName:    studentName,
		ChefName:       chefName,
		CourseTitle:    courseTitle,
		CompletionDate: time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadToCloudinary(fileBytes []byte, studentID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%s_%s", studentID, uuid.New().String()),
		Folder:       "culinary_academy_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
