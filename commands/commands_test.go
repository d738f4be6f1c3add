package commands

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ayunami2000/sdpictures/chatapi"
	"github.com/ayunami2000/sdpictures/commands/command"
	"github.com/ayunami2000/sdpictures/config"
	"github.com/ayunami2000/sdpictures/sdapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	reply    string
	prompts  []string
	paths    []string
	txt2img  []sdapi.Txt2ImgRequest
	options  []sdapi.Options
	pngImage string
}

func (b *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.paths = append(b.paths, r.URL.Path)

	switch r.URL.Path {
	case "/api/v1/generate":
		var req chatapi.KoboldRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.prompts = append(b.prompts, req.Prompt)
		json.NewEncoder(w).Encode(map[string]any{"results": []map[string]string{{"text": b.reply}}})
	case "/sdapi/v1/txt2img":
		var req sdapi.Txt2ImgRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.txt2img = append(b.txt2img, req)
		json.NewEncoder(w).Encode(sdapi.Txt2ImgResponse{Images: []string{b.pngImage}})
	case "/sdapi/v1/sd-models":
		w.Write([]byte(`[{"title":"dream.safetensors [abc]","model_name":"dream"}]`))
	case "/sdapi/v1/samplers":
		w.Write([]byte(`[{"name":"DDIM","aliases":[]},{"name":"Euler a","aliases":["k_euler_a"]}]`))
	case "/sdapi/v1/options":
		if r.Method == http.MethodPost {
			var opts sdapi.Options
			_ = json.NewDecoder(r.Body).Decode(&opts)
			b.options = append(b.options, opts)
			return
		}
		w.Write([]byte(`{"sd_model_checkpoint":"dream.safetensors [abc]"}`))
	case "/sdapi/v1/unload-checkpoint", "/sdapi/v1/reload-checkpoint", "/api/v1/model":
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newTestExecutor(t *testing.T) (*command.Executor, *fakeBackend, *bytes.Buffer) {
	t.Helper()

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 4, 4))))

	backend := &fakeBackend{pngImage: base64.StdEncoding.EncodeToString(img.Bytes())}
	server := httptest.NewServer(backend)
	t.Cleanup(server.Close)

	c := config.Default()
	c.Address = server.URL
	c.ChatURL = server.URL
	c.OutputRoot = t.TempDir()

	var out bytes.Buffer
	e := command.NewExecutor(command.NewServices(config.NewStore(c), command.NewConsoleHost(false), &out))
	Register(e)

	return e, backend, &out
}

func TestExecuteUnknownCommand(t *testing.T) {
	e, _, _ := newTestExecutor(t)
	assert.ErrorIs(t, e.Execute(context.Background(), "/nope"), command.ErrCommandNotFound)
}

func TestHelp(t *testing.T) {
	e, _, out := newTestExecutor(t)
	require.NoError(t, e.Execute(context.Background(), "/"))
	assert.Contains(t, out.String(), "**Commands:** help, chat, force")
}

func TestChatPlainReply(t *testing.T) {
	e, backend, out := newTestExecutor(t)
	backend.reply = " Hello there!\nYou: something else"

	require.NoError(t, e.Execute(context.Background(), "hi"))
	assert.Contains(t, out.String(), "**Assistant:** Hello there!")
	assert.Equal(t, []string{"You: hi\nAssistant:"}, backend.prompts)
	assert.Empty(t, backend.txt2img)
	assert.Equal(t, []string{"You: hi", "Assistant: Hello there!"}, e.History())
}

func TestChatInteractivePicture(t *testing.T) {
	e, backend, out := newTestExecutor(t)
	backend.reply = "*smiles* A small red cat on a sofa"

	ctx := context.Background()
	require.NoError(t, e.Execute(ctx, "/mode interactive"))
	require.NoError(t, e.Execute(ctx, "send me a picture of your cat"))

	require.Len(t, backend.prompts, 1)
	assert.True(t, strings.HasPrefix(backend.prompts[0], "You: Please provide a detailed and vivid description of your cat\n"))

	require.Len(t, backend.txt2img, 1)
	assert.Contains(t, backend.txt2img[0].Prompt, "small red cat")
	assert.Contains(t, out.String(), "*Is sending a picture...*")
	assert.Contains(t, out.String(), `<img src="data:image/jpeg;base64,`)
	assert.Contains(t, out.String(), "*Sends a picture which portrays: “A small red cat on a sofa”*")
	assert.False(t, e.Session.PictureResponse())
}

func TestForceAndSuppress(t *testing.T) {
	e, _, _ := newTestExecutor(t)
	ctx := context.Background()

	require.NoError(t, e.Execute(ctx, "/force"))
	assert.True(t, e.Session.PictureResponse())
	assert.True(t, e.Host.NoStream())

	require.NoError(t, e.Execute(ctx, "/sp"))
	assert.False(t, e.Session.PictureResponse())
	assert.False(t, e.Host.NoStream())
}

func TestModeCommand(t *testing.T) {
	e, _, _ := newTestExecutor(t)
	ctx := context.Background()

	require.NoError(t, e.Execute(ctx, "/mode 2"))
	assert.Equal(t, config.ModePicturebook, e.Session.Mode())
	assert.True(t, e.Session.PictureResponse())
	assert.Equal(t, config.ModePicturebook, e.Config.Get().Mode)

	assert.ErrorIs(t, e.Execute(ctx, "/mode 7"), config.ErrInvalidMode)
}

func TestVRAMCommand(t *testing.T) {
	e, backend, _ := newTestExecutor(t)
	ctx := context.Background()

	require.NoError(t, e.Execute(ctx, "/vram on"))
	assert.True(t, e.Config.Get().ManageVRAM)
	assert.Equal(t, []string{"/sdapi/v1/unload-checkpoint"}, backend.paths)

	backend.paths = nil
	require.NoError(t, e.Execute(ctx, "/vram reserve"))
	assert.Equal(t, []string{"/api/v1/model", "/sdapi/v1/reload-checkpoint"}, backend.paths)

	assert.Error(t, e.Execute(ctx, "/vram sideways"))
}

func TestSizeCommand(t *testing.T) {
	e, _, _ := newTestExecutor(t)
	ctx := context.Background()

	require.NoError(t, e.Execute(ctx, "/size 768x512"))
	assert.Equal(t, uint(768), e.Config.Get().Width)
	assert.Equal(t, uint(512), e.Config.Get().Height)

	assert.ErrorIs(t, e.Execute(ctx, "/sz 500"), ErrInvalidSize)
}

func TestClampedSettings(t *testing.T) {
	e, _, _ := newTestExecutor(t)
	ctx := context.Background()

	require.NoError(t, e.Execute(ctx, "/steps 1000"))
	assert.Equal(t, uint(150), e.Config.Get().Steps)

	require.NoError(t, e.Execute(ctx, "/gs 0.2"))
	assert.Equal(t, 1.0, e.Config.Get().CfgScale)

	require.NoError(t, e.Execute(ctx, "/clear all"))
	assert.Equal(t, uint(32), e.Config.Get().Steps)
	assert.Equal(t, 7.0, e.Config.Get().CfgScale)
}

func TestSamplerCommand(t *testing.T) {
	e, _, _ := newTestExecutor(t)
	ctx := context.Background()

	require.NoError(t, e.Execute(ctx, "/sampler k_euler_a"))
	assert.Equal(t, "Euler a", e.Config.Get().SamplerName)

	assert.ErrorIs(t, e.Execute(ctx, "/sampler nope"), ErrInvalidSampler)
}

func TestModelCommand(t *testing.T) {
	e, backend, _ := newTestExecutor(t)

	require.NoError(t, e.Execute(context.Background(), "/model dream"))
	assert.Equal(t, []sdapi.Options{{SDModelCheckpoint: "dream.safetensors [abc]"}}, backend.options)
	assert.Equal(t, "dream.safetensors [abc]", e.Config.Get().Model)
}

func TestToggleCommand(t *testing.T) {
	e, _, _ := newTestExecutor(t)
	ctx := context.Background()

	require.NoError(t, e.Execute(ctx, "/saveimages on"))
	assert.True(t, e.Config.Get().SaveImages)

	assert.ErrorIs(t, e.Execute(ctx, "/rf maybe"), ErrInvalidToggle)
}

func TestAddressCommandKeepsPreviousOnFailure(t *testing.T) {
	e, _, _ := newTestExecutor(t)
	previous := e.Config.Get().Address

	assert.Error(t, e.Execute(context.Background(), "/address http://127.0.0.1:1"))
	assert.Equal(t, previous, e.Config.Get().Address)
}
