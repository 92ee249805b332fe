package blocks

// Main is the hero at the top of the homepage.
func Main() Hero {
	return Hero{
		Title:   "Graphul",
		Tagline: "An Express inspired web framework for Rust",
		Description: "Graphul is an Express inspired web framework using a powerful extractor system. " +
			"Designed to improve, speed, and scale your microservices with a friendly syntax. " +
			"Graphul is built with Rust, so it gets memory safety, reliability, concurrency, and performance for free.",
		Links: []Link{
			{Label: "Get Started", Href: "https://github.com/graphul-rs/graphul#getting-started", Primary: true},
			{Label: "GitHub", Href: "https://github.com/graphul-rs/graphul"},
		},
		Code: Code(`use graphul::{http::Methods, Graphul};

#[tokio::main]
async fn main() {
    let mut app = Graphul::new();

    app.get("/", || async {
        "Hello, World 👋!"
    });

    app.run("127.0.0.1:8000").await;
}`),
	}
}

// Home lists the homepage's feature blocks in the order they appear.
func Home() []Block {
	return []Block{
		RobustRouting(),
		StaticFiles(),
		APIReady(),
		Middleware(),
		LowMemoryFootprint(),
		Templating(),
		Websockets(),
		RateLimiter(),
		GetStarted(),
	}
}

func RobustRouting() Block {
	return Block{
		ID:    "robust-routing",
		Title: "Robust Routing",
		Description: "Setting up routes for your application has never been so easy! " +
			"The Express-like route definitions are easy to understand and work with.",
		Code: Code(`app.get("/", || async {
    "GET request"
})

app.get("/:param", |c: Context| async move {
    format!("param: {}", c.params("param"))
})

app.post("/", || async {
    "POST request"
})`),
	}
}

func StaticFiles() Block {
	return Block{
		ID:    "static-files",
		Title: "Static Files",
		Description: "Serve your static HTML, CSS, and JavaScript files with ease by defining static routes. " +
			"Single page applications get their own configuration, falling back to the index for unknown paths.",
		Code: Code(`// serve everything in ./public at /
app.static_files("/", "public", FolderConfig::default());

// single page application
app.static_files("/app", "app/build", FolderConfig::spa());

// a single file
app.static_file("/about", "templates/about.html", FileConfig::default());`),
	}
}

func APIReady() Block {
	return Block{
		ID:    "api-ready",
		Title: "API Ready",
		Description: "Graphul is the ideal choice for building REST APIs. " +
			"Extract JSON bodies and respond with JSON using the same types you already use with serde.",
		Code: Code(`use graphul::{extract::Json, http::Methods, Graphul};
use serde_json::json;

app.get("/", || async {
    Json(json!({
        "name": "full_name",
        "age": 98,
        "phones": [
            format!("+44 {}", 8)
        ]
    }))
});`),
	}
}

func Middleware() Block {
	return Block{
		ID:    "middleware",
		Title: "Middleware",
		Description: "Any async function can act as a middleware, so you can inspect or modify every request " +
			"and response. Graphul is also compatible with the Tower ecosystem of middleware.",
		Code: Code(`async fn my_middleware(request: Request, next: Next) -> Response {
    // your logic here
    next.run(request).await
}

app.middleware(middleware::from_fn(my_middleware));`),
	}
}

func LowMemoryFootprint() Block {
	return Block{
		ID:    "low-memory-footprint",
		Title: "Low Memory Footprint",
		Description: "Graphul is built on Rust, with no garbage collector and no runtime overhead. " +
			"Your services use less memory and start faster, which saves money on infrastructure.",
	}
}

func Templating() Block {
	return Block{
		ID:    "templating",
		Title: "Templating",
		Description: "Render HTML with type-checked templates. " +
			"Graphul works with Askama, so template errors are caught at compile time instead of in production.",
		Code: Code(`use askama::Template;
use graphul::{extract::Path, template::HtmlTemplate};

#[derive(Template)]
#[template(path = "hello.html")]
struct HelloTemplate {
    name: String,
}

app.get("/:name", |Path(name): Path<String>| async move {
    HtmlTemplate(HelloTemplate { name })
});`),
	}
}

func Websockets() Block {
	return Block{
		ID:    "websockets",
		Title: "Websockets",
		Description: "Upgrade any route to a WebSocket connection and build real-time features " +
			"like chat, notifications, and live dashboards.",
		Code: Code(`app.get("/ws", |ws: WebSocketUpgrade| async move {
    ws.on_upgrade(handle_socket)
});

async fn handle_socket(mut socket: WebSocket) {
    while let Some(Ok(msg)) = socket.recv().await {
        if socket.send(msg).await.is_err() {
            return;
        }
    }
}`),
	}
}

func RateLimiter() Block {
	return Block{
		ID:    "rate-limiter",
		Title: "Rate Limiter",
		Description: "Protect your services from abuse by limiting how many requests they accept " +
			"in a given period of time.",
		Code: Code(`use std::time::Duration;
use graphul::middleware::limit::RateLimitLayer;

// at most 5 requests per second
app.middleware(RateLimitLayer::new(5, Duration::from_secs(1)));`),
	}
}

func GetStarted() Block {
	return Block{
		ID:    "get-started",
		Title: "Get Started",
		Description: "Add Graphul and Tokio to your project and start building. " +
			"Graphul is open source and released under the MIT license.",
		Code: Code(`[dependencies]
graphul = "1.0"
tokio = { version = "1", features = ["full"] }`),
	}
}
