package api

import (
	"bytes"
	"errors"
	"image"
	"math/rand"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/youruser/colorpages/config"
	"github.com/youruser/colorpages/internal/catalog"
	"github.com/youruser/colorpages/internal/queue"

	imagepkg "github.com/youruser/colorpages/internal/image"
)

type Handler struct {
	cfg      *config.Config
	producer queue.Producer
}

func NewHandler(cfg *config.Config, producer queue.Producer) *Handler {
	return &Handler{cfg: cfg, producer: producer}
}

// health
func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) locate(c *gin.Context) {
	img, ok := formImage(c, "image")
	if !ok {
		return
	}
	box, found := imagepkg.Locate(img, intParam(c, "threshold", h.cfg.Pipeline.Threshold))
	if !found {
		c.JSON(http.StatusOK, gin.H{"found": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"found": true, "bbox": gin.H{
		"left":   box.Left,
		"top":    box.Top,
		"right":  box.Right,
		"bottom": box.Bottom,
	}})
}

func (h *Handler) audit(c *gin.Context) {
	img, ok := formImage(c, "image")
	if !ok {
		return
	}
	p := h.cfg.Pipeline
	occ := imagepkg.Audit(img, intParam(c, "canvas", p.AuditCanvas), intParam(c, "threshold", p.AuditThreshold))
	c.JSON(http.StatusOK, gin.H{
		"found":          occ.Found,
		"occupancy":      occ.Fraction,
		"content_width":  occ.ContentWidth,
		"content_height": occ.ContentHeight,
		"small":          occ.Small(p.AcceptOccupancy),
	})
}

func (h *Handler) normalize(c *gin.Context) {
	img, ok := formImage(c, "image")
	if !ok {
		return
	}
	spec, err := h.cfg.Pipeline.CanvasSpec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	spec.Threshold = intParam(c, "threshold", spec.Threshold)

	out, err := imagepkg.Normalize(img, spec)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, imagepkg.ErrNoContentDetected) || errors.Is(err, imagepkg.ErrInvalidCanvas) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	writePNG(c, out)
}

func (h *Handler) debug(c *gin.Context) {
	img, ok := formImage(c, "image")
	if !ok {
		return
	}
	style, err := h.cfg.Pipeline.DebugStyle()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out, box, found := imagepkg.Visualize(img, intParam(c, "threshold", h.cfg.Pipeline.Threshold), style)
	if !found {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": imagepkg.ErrNoContentDetected.Error()})
		return
	}
	c.Header("X-BBox", box.String())
	writePNG(c, out)
}

// header composes the three uploaded panels under the configured template.
func (h *Handler) header(c *gin.Context) {
	var missing []string
	panels := make([]imagepkg.Panel, 0, len(imagepkg.Styles))
	for _, style := range imagepkg.Styles {
		if _, err := c.FormFile(style); err != nil {
			missing = append(missing, style+".png")
			continue
		}
		img, ok := formImage(c, style)
		if !ok {
			return
		}
		panels = append(panels, imagepkg.Panel{Style: style, Image: img})
	}
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": imagepkg.ErrMissingPanel.Error(), "missing": missing})
		return
	}

	template, err := imagepkg.LoadTemplate(h.cfg.Pipeline.TemplatePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	seed := time.Now().UnixNano()
	if s, err := strconv.ParseInt(c.PostForm("seed"), 10, 64); err == nil {
		seed = s
	}
	out, order := imagepkg.ComposePanels(panels, template, h.cfg.Pipeline.PanelSize(), rand.New(rand.NewSource(seed)))
	c.Header("X-Panel-Order", strings.Join(order, ","))
	writePNG(c, out)
}

// qr endpoint returns a PNG of a QR for the catalog page at "path"
func (h *Handler) qr(c *gin.Context) {
	path := c.DefaultQuery("path", "/")
	b, err := imagepkg.GenerateQRPNG(catalog.PageURL(h.cfg.Catalog.BaseURL, path), intParam(c, "size", 400))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func (h *Handler) urls(c *gin.Context) {
	all, err := catalog.LoadCategoriesFromDir(h.cfg.Catalog.ContentDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	all = catalog.Filter(all, catalog.FilterOptions{
		Categories: c.QueryArray("category"),
		FreeWords:  c.Query("q"),
	})

	var out []string
	if c.Query("sample") == "true" {
		seed := int64(intParam(c, "seed", int(time.Now().UnixNano())))
		out = catalog.SampleURLs(all, rand.New(rand.NewSource(seed)))
	} else {
		out = catalog.AllURLs(all, h.cfg.Catalog.StaticPages)
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "urls": out})
}

func (h *Handler) enqueueHeader(c *gin.Context) {
	var req queue.HeaderTask
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	name := req.Folder
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		c.JSON(http.StatusBadRequest, gin.H{"error": "folder must name a subject directory"})
		return
	}
	req.Folder = filepath.Join(h.cfg.Pipeline.AssetsRoot, name)
	if err := h.producer.SendHeaderTask(c.Request.Context(), req); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"folder": req.Folder, "status": "queued"})
}

func formImage(c *gin.Context, field string) (image.Image, bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no " + field + " file provided"})
		return nil, false
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	defer f.Close()

	img, err := imagepkg.Decode(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": field + ": " + err.Error()})
		return nil, false
	}
	return img, true
}

func intParam(c *gin.Context, name string, def int) int {
	s := c.Query(name)
	if s == "" {
		s = c.PostForm(name)
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

func writePNG(c *gin.Context, img image.Image) {
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, imaging.PNG); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
